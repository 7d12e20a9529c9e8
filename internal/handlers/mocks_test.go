package handlers_test

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ResolveRate(ctx context.Context, ownerID, fromCode, toCode string) (*domain.RateQuote, error) {
	args := m.Called(ctx, ownerID, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateQuote), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, ownerID string, amount decimal.Decimal, fromCode, toCode string) (*domain.Conversion, error) {
	args := m.Called(ctx, ownerID, amount, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetOverride(ctx context.Context, ownerID, fromCode, toCode string) (*domain.ExchangeRateOverride, error) {
	args := m.Called(ctx, ownerID, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateOverride), args.Error(1)
}

func (m *MockExchangeRateService) SetOverride(ctx context.Context, ownerID, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRateOverride, error) {
	args := m.Called(ctx, ownerID, fromCode, toCode, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateOverride), args.Error(1)
}

func (m *MockExchangeRateService) ClearOverride(ctx context.Context, ownerID, fromCode, toCode string) error {
	args := m.Called(ctx, ownerID, fromCode, toCode)
	return args.Error(0)
}

func (m *MockExchangeRateService) ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateOverride), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock InstallmentService ---
type MockInstallmentService struct {
	mock.Mock
}

func (m *MockInstallmentService) CreateSale(ctx context.Context, req dto.CreateInstallmentSaleRequest, creatorUserID string) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentSale), args.Error(1)
}

func (m *MockInstallmentService) GetSale(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentSale), args.Error(1)
}

func (m *MockInstallmentService) ListSales(ctx context.Context, params dto.ListInstallmentSalesParams) (*dto.ListInstallmentSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInstallmentSalesResponse), args.Error(1)
}

func (m *MockInstallmentService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateInstallmentSaleRequest, userID string) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, saleID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentSale), args.Error(1)
}

func (m *MockInstallmentService) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockInstallmentService) RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, saleID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockInstallmentService) UpdatePayment(ctx context.Context, saleID, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, saleID, paymentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockInstallmentService) DeletePayment(ctx context.Context, saleID, paymentID string) error {
	args := m.Called(ctx, saleID, paymentID)
	return args.Error(0)
}

func (m *MockInstallmentService) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockInstallmentService) GetSummary(ctx context.Context, saleID string) (*domain.InstallmentSummary, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentSummary), args.Error(1)
}

func (m *MockInstallmentService) GetSchedule(ctx context.Context, saleID string) ([]domain.ScheduledInstallment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledInstallment), args.Error(1)
}

var _ portssvc.InstallmentSvcFacade = (*MockInstallmentService)(nil)

// --- Mock RegulatoryService ---
type MockRegulatoryService struct {
	mock.Mock
}

func (m *MockRegulatoryService) ListMakers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegulatoryService) ListModels(ctx context.Context, maker string) ([]string, error) {
	args := m.Called(ctx, maker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegulatoryService) ListGrades(ctx context.Context, maker, model string) ([]string, error) {
	args := m.Called(ctx, maker, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegulatoryService) Lookup(ctx context.Context, maker, model, grade string) (*domain.DutyQuote, error) {
	args := m.Called(ctx, maker, model, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyQuote), args.Error(1)
}

func (m *MockRegulatoryService) EstimateDuty(ctx context.Context, maker, model, grade, currencyCode string) (*domain.DutyEstimate, error) {
	args := m.Called(ctx, maker, model, grade, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyEstimate), args.Error(1)
}

var _ portssvc.RegulatorySvcFacade = (*MockRegulatoryService)(nil)
