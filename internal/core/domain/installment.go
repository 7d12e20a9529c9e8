package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes the down payment from periodic installments.
type PaymentType string

const (
	PaymentTypeDownPayment PaymentType = "down_payment"
	PaymentTypeInstallment PaymentType = "installment"
)

// IsValid reports whether t is a known payment type.
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeDownPayment || t == PaymentTypeInstallment
}

// SaleStatus is derived from the remaining balance, never stored.
type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "active"
	SaleStatusCompleted SaleStatus = "completed"
)

// InstallmentSale is a vehicle sale paid as a down payment plus equal installments.
type InstallmentSale struct {
	SaleID            string          `json:"saleID"`
	VehicleID         string          `json:"vehicleID"`
	CustomerName      string          `json:"customerName"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	DownPayment       decimal.Decimal `json:"downPayment"`
	InstallmentCount  int             `json:"installmentCount"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"` // derived from the three fields above on every change
	CurrencyCode      string          `json:"currencyCode"`
	SaleDate          time.Time       `json:"saleDate"`
	AuditFields
}

// Payment is a single money movement against an InstallmentSale.
type Payment struct {
	PaymentID         string          `json:"paymentID"`
	InstallmentSaleID string          `json:"installmentSaleID"`
	PaymentType       PaymentType     `json:"paymentType"`
	InstallmentNumber *int            `json:"installmentNumber,omitempty"` // set iff PaymentType is installment
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	PaymentDate       time.Time       `json:"paymentDate"`
	Notes             string          `json:"notes"`
	AuditFields
}

// Validate checks the payment's own invariants. Sale-level checks (currency match,
// installment number range) live in the service.
func (p Payment) Validate() error {
	if !p.PaymentType.IsValid() {
		return fmt.Errorf("unknown payment type %q", p.PaymentType)
	}
	if p.PaymentType == PaymentTypeInstallment && p.InstallmentNumber == nil {
		return fmt.Errorf("installment number is required for installment payments")
	}
	if p.PaymentType == PaymentTypeDownPayment && p.InstallmentNumber != nil {
		return fmt.Errorf("installment number must be empty for down payments")
	}
	if p.InstallmentNumber != nil && *p.InstallmentNumber < 1 {
		return fmt.Errorf("installment number must be at least 1")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive")
	}
	if p.PaymentDate.IsZero() {
		return fmt.Errorf("payment date is required")
	}
	return nil
}

// OverdueStatus is the result of overdue detection when it can be determined.
// A nil *OverdueStatus means "unknown".
type OverdueStatus struct {
	Overdue     bool        `json:"overdue"`
	DaysElapsed int         `json:"daysElapsed"`
	Since       time.Time   `json:"since"`   // date of the payment the count is measured from
	BasedOn     PaymentType `json:"basedOn"` // which payment kind anchored the count
}

// InstallmentSummary is everything the ledger derives for one sale.
type InstallmentSummary struct {
	SaleID                  string          `json:"saleID"`
	CurrencyCode            string          `json:"currencyCode"`
	TotalAmount             decimal.Decimal `json:"totalAmount"`
	DownPayment             decimal.Decimal `json:"downPayment"`
	InstallmentCount        int             `json:"installmentCount"`
	InstallmentAmount       decimal.Decimal `json:"installmentAmount"`
	StoredInstallmentAmount decimal.Decimal `json:"storedInstallmentAmount"`
	InstallmentAmountDrift  bool            `json:"installmentAmountDrift"`
	PaidInstallments        int             `json:"paidInstallments"`
	RemainingInstallments   int             `json:"remainingInstallments"`
	NextInstallmentNumber   int             `json:"nextInstallmentNumber"` // 0 once every installment is paid
	TotalPaid               decimal.Decimal `json:"totalPaid"`
	RemainingBalance        decimal.Decimal `json:"remainingBalance"`        // signed
	DisplayRemainingBalance decimal.Decimal `json:"displayRemainingBalance"` // clamped at zero
	Status                  SaleStatus      `json:"status"`
	Overdue                 *OverdueStatus  `json:"overdue"`
}

// ScheduledInstallment is one planned installment of a sale.
type ScheduledInstallment struct {
	Number  int             `json:"number"`
	DueDate time.Time       `json:"dueDate"`
	Amount  decimal.Decimal `json:"amount"`
}
