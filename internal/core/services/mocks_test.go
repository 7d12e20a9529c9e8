package services_test

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock LiveRateSource ---
type MockLiveRateSource struct {
	mock.Mock
}

func (m *MockLiveRateSource) FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ExchangeRateOverrideStore ---
type MockOverrideStore struct {
	mock.Mock
}

func (m *MockOverrideStore) GetOverride(ctx context.Context, ownerID string, pair domain.RatePair) (*domain.ExchangeRateOverride, error) {
	args := m.Called(ctx, ownerID, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateOverride), args.Error(1)
}

func (m *MockOverrideStore) SetOverride(ctx context.Context, ownerID string, override domain.ExchangeRateOverride) error {
	args := m.Called(ctx, ownerID, override)
	return args.Error(0)
}

func (m *MockOverrideStore) ClearOverride(ctx context.Context, ownerID string, pair domain.RatePair) error {
	args := m.Called(ctx, ownerID, pair)
	return args.Error(0)
}

func (m *MockOverrideStore) ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateOverride), args.Error(1)
}

// --- Mock InstallmentSaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so services mutating the sale do not change the fixture.
	sale := *args.Get(0).(*domain.InstallmentSale)
	return &sale, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.InstallmentSale, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var sales []domain.InstallmentSale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.InstallmentSale)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return sales, next, args.Error(2)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.InstallmentSale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.InstallmentSale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	payment := *args.Get(0).(*domain.Payment)
	return &payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.Payment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock RegulatoryTableSource ---
type MockRegulatorySource struct {
	mock.Mock
}

func (m *MockRegulatorySource) LoadRegulatoryTable(ctx context.Context) (domain.RegulatoryTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RegulatoryTable), args.Error(1)
}
