package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSale is a row of installment_sales.
type InstallmentSale struct {
	SaleID            string          `json:"saleID"` // Primary Key (UUID)
	VehicleID         string          `json:"vehicleID"`
	CustomerName      string          `json:"customerName"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	DownPayment       decimal.Decimal `json:"downPayment"`
	InstallmentCount  int             `json:"installmentCount"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"` // stored copy, re-derived on write
	CurrencyCode      string          `json:"currencyCode"`
	SaleDate          time.Time       `json:"saleDate"`
	AuditFields
}

// Payment is a row of payments.
type Payment struct {
	PaymentID         string          `json:"paymentID"`         // Primary Key (UUID)
	InstallmentSaleID string          `json:"installmentSaleID"` // FK -> installment_sales.sale_id
	PaymentType       string          `json:"paymentType"`
	InstallmentNumber *int            `json:"installmentNumber"` // NULL for down payments
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	PaymentDate       time.Time       `json:"paymentDate"`
	Notes             string          `json:"notes"`
	AuditFields
}
