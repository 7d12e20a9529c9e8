package services

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
)

// InstallmentSaleSvc defines operations on installment sales
type InstallmentSaleSvc interface {
	CreateSale(ctx context.Context, req dto.CreateInstallmentSaleRequest, creatorUserID string) (*domain.InstallmentSale, error)
	GetSale(ctx context.Context, saleID string) (*domain.InstallmentSale, error)
	ListSales(ctx context.Context, params dto.ListInstallmentSalesParams) (*dto.ListInstallmentSalesResponse, error)
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateInstallmentSaleRequest, userID string) (*domain.InstallmentSale, error)
	DeleteSale(ctx context.Context, saleID string) error
}

// PaymentSvc defines operations on the payments of a sale
type PaymentSvc interface {
	RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, saleID, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, saleID, paymentID string) error
	ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error)
}

// InstallmentLedgerSvc derives balances and schedules
type InstallmentLedgerSvc interface {
	GetSummary(ctx context.Context, saleID string) (*domain.InstallmentSummary, error)
	GetSchedule(ctx context.Context, saleID string) ([]domain.ScheduledInstallment, error)
}

// InstallmentSvcFacade combines all installment-related service interfaces
type InstallmentSvcFacade interface {
	InstallmentSaleSvc
	PaymentSvc
	InstallmentLedgerSvc
}
