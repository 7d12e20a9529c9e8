package repositories

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
)

// InstallmentSaleReader defines read operations for installment sales
type InstallmentSaleReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error)
	// ListSales returns up to limit sales ordered by sale date (newest first), and a
	// token for the next page when more remain.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.InstallmentSale, *string, error)
}

// InstallmentSaleWriter defines write operations for installment sales
type InstallmentSaleWriter interface {
	SaveSale(ctx context.Context, sale domain.InstallmentSale) error
	UpdateSale(ctx context.Context, sale domain.InstallmentSale) error
	// DeleteSale removes the sale together with its payments.
	DeleteSale(ctx context.Context, saleID string) error
}

// InstallmentSaleRepositoryFacade combines all installment sale repository interfaces
type InstallmentSaleRepositoryFacade interface {
	InstallmentSaleReader
	InstallmentSaleWriter
}

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
