package dto

import (
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateInstallmentSaleRequest defines the structure for opening an installment sale.
type CreateInstallmentSaleRequest struct {
	VehicleID        string          `json:"vehicleID" binding:"required"`
	CustomerName     string          `json:"customerName" binding:"required"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	DownPayment      decimal.Decimal `json:"downPayment"`
	InstallmentCount int             `json:"installmentCount" binding:"required,min=1"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,currency"`
	SaleDate         string          `json:"saleDate" binding:"required,datetime=2006-01-02"`
}

// UpdateInstallmentSaleRequest changes any subset of a sale's fields.
// Changing total, down payment or count recomputes the installment amount.
type UpdateInstallmentSaleRequest struct {
	VehicleID        *string          `json:"vehicleID,omitempty"`
	CustomerName     *string          `json:"customerName,omitempty"`
	TotalAmount      *decimal.Decimal `json:"totalAmount,omitempty"`
	DownPayment      *decimal.Decimal `json:"downPayment,omitempty"`
	InstallmentCount *int             `json:"installmentCount,omitempty" binding:"omitempty,min=1"`
	SaleDate         *string          `json:"saleDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ListInstallmentSalesParams defines the query parameters for listing sales.
type ListInstallmentSalesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// InstallmentSaleResponse defines the structure for API responses containing sale details.
type InstallmentSaleResponse struct {
	SaleID                     string          `json:"saleID"`
	VehicleID                  string          `json:"vehicleID"`
	CustomerName               string          `json:"customerName"`
	TotalAmount                decimal.Decimal `json:"totalAmount"`
	DownPayment                decimal.Decimal `json:"downPayment"`
	InstallmentCount           int             `json:"installmentCount"`
	InstallmentAmount          decimal.Decimal `json:"installmentAmount"`
	FormattedTotalAmount       string          `json:"formattedTotalAmount"`
	FormattedInstallmentAmount string          `json:"formattedInstallmentAmount"`
	CurrencyCode               string          `json:"currencyCode"`
	SaleDate                   string          `json:"saleDate"`
	CreatedAt                  time.Time       `json:"createdAt"`
	CreatedBy                  string          `json:"createdBy"`
	LastUpdatedAt              time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy              string          `json:"lastUpdatedBy"`
}

// ToInstallmentSaleResponse converts a domain.InstallmentSale to its DTO
func ToInstallmentSaleResponse(sale *domain.InstallmentSale) InstallmentSaleResponse {
	return InstallmentSaleResponse{
		SaleID:                     sale.SaleID,
		VehicleID:                  sale.VehicleID,
		CustomerName:               sale.CustomerName,
		TotalAmount:                sale.TotalAmount,
		DownPayment:                sale.DownPayment,
		InstallmentCount:           sale.InstallmentCount,
		InstallmentAmount:          sale.InstallmentAmount,
		FormattedTotalAmount:       utils.FormatAmount(decimal.NewNullDecimal(sale.TotalAmount), sale.CurrencyCode, ""),
		FormattedInstallmentAmount: utils.FormatAmount(decimal.NewNullDecimal(sale.InstallmentAmount), sale.CurrencyCode, ""),
		CurrencyCode:               sale.CurrencyCode,
		SaleDate:                   sale.SaleDate.Format(DateLayout),
		CreatedAt:                  sale.CreatedAt,
		CreatedBy:                  sale.CreatedBy,
		LastUpdatedAt:              sale.LastUpdatedAt,
		LastUpdatedBy:              sale.LastUpdatedBy,
	}
}

// ToListInstallmentSaleResponse converts sales to DTOs.
func ToListInstallmentSaleResponse(sales []domain.InstallmentSale) []InstallmentSaleResponse {
	list := make([]InstallmentSaleResponse, len(sales))
	for i := range sales {
		list[i] = ToInstallmentSaleResponse(&sales[i])
	}
	return list
}

// ListInstallmentSalesResponse is a page of sales.
type ListInstallmentSalesResponse struct {
	Sales     []InstallmentSaleResponse `json:"sales"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// RecordPaymentRequest defines the structure for recording a payment against a sale.
type RecordPaymentRequest struct {
	PaymentType       domain.PaymentType `json:"paymentType" binding:"required,oneof=down_payment installment"`
	InstallmentNumber *int               `json:"installmentNumber,omitempty"`
	Amount            decimal.Decimal    `json:"amount"`
	CurrencyCode      string             `json:"currencyCode" binding:"omitempty,currency"` // defaults to the sale currency
	PaymentDate       string             `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Notes             string             `json:"notes"`
}

// UpdatePaymentRequest edits a recorded payment. Nil fields keep their value.
type UpdatePaymentRequest struct {
	PaymentType       *domain.PaymentType `json:"paymentType,omitempty" binding:"omitempty,oneof=down_payment installment"`
	InstallmentNumber *int                `json:"installmentNumber,omitempty"`
	Amount            *decimal.Decimal    `json:"amount,omitempty"`
	PaymentDate       *string             `json:"paymentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes             *string             `json:"notes,omitempty"`
}

// PaymentResponse defines the structure for API responses containing payment details.
type PaymentResponse struct {
	PaymentID         string             `json:"paymentID"`
	InstallmentSaleID string             `json:"installmentSaleID"`
	PaymentType       domain.PaymentType `json:"paymentType"`
	InstallmentNumber *int               `json:"installmentNumber,omitempty"`
	Amount            decimal.Decimal    `json:"amount"`
	FormattedAmount   string             `json:"formattedAmount"`
	CurrencyCode      string             `json:"currencyCode"`
	PaymentDate       string             `json:"paymentDate"`
	Notes             string             `json:"notes"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to its DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.PaymentID,
		InstallmentSaleID: p.InstallmentSaleID,
		PaymentType:       p.PaymentType,
		InstallmentNumber: p.InstallmentNumber,
		Amount:            p.Amount,
		FormattedAmount:   utils.FormatRecordAmount(decimal.NewNullDecimal(p.Amount), &p.CurrencyCode, domain.CurrencyTRY, ""),
		CurrencyCode:      p.CurrencyCode,
		PaymentDate:       p.PaymentDate.Format(DateLayout),
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		CreatedBy:         p.CreatedBy,
	}
}

// ToListPaymentResponse converts payments to DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	list := make([]PaymentResponse, len(payments))
	for i := range payments {
		list[i] = ToPaymentResponse(&payments[i])
	}
	return list
}

// OverdueResponse is the overdue part of a summary.
type OverdueResponse struct {
	Overdue     bool               `json:"overdue"`
	DaysElapsed int                `json:"daysElapsed"`
	Since       string             `json:"since"`
	BasedOn     domain.PaymentType `json:"basedOn"`
}

// InstallmentSummaryResponse is the ledger view of a sale.
type InstallmentSummaryResponse struct {
	SaleID                    string            `json:"saleID"`
	CurrencyCode              string            `json:"currencyCode"`
	TotalAmount               decimal.Decimal   `json:"totalAmount"`
	DownPayment               decimal.Decimal   `json:"downPayment"`
	InstallmentCount          int               `json:"installmentCount"`
	InstallmentAmount         decimal.Decimal   `json:"installmentAmount"`
	StoredInstallmentAmount   decimal.Decimal   `json:"storedInstallmentAmount"`
	InstallmentAmountDrift    bool              `json:"installmentAmountDrift"`
	PaidInstallments          int               `json:"paidInstallments"`
	RemainingInstallments     int               `json:"remainingInstallments"`
	NextInstallmentNumber     int               `json:"nextInstallmentNumber"`
	TotalPaid                 decimal.Decimal   `json:"totalPaid"`
	RemainingBalance          decimal.Decimal   `json:"remainingBalance"`
	DisplayRemainingBalance   decimal.Decimal   `json:"displayRemainingBalance"`
	FormattedTotalPaid        string            `json:"formattedTotalPaid"`
	FormattedRemainingBalance string            `json:"formattedRemainingBalance"`
	Status                    domain.SaleStatus `json:"status"`
	Overdue                   *OverdueResponse  `json:"overdue"` // null when it cannot be determined
}

// ToInstallmentSummaryResponse converts a domain.InstallmentSummary, formatting
// amounts for locale.
func ToInstallmentSummaryResponse(s *domain.InstallmentSummary, locale string) InstallmentSummaryResponse {
	resp := InstallmentSummaryResponse{
		SaleID:                    s.SaleID,
		CurrencyCode:              s.CurrencyCode,
		TotalAmount:               s.TotalAmount,
		DownPayment:               s.DownPayment,
		InstallmentCount:          s.InstallmentCount,
		InstallmentAmount:         s.InstallmentAmount,
		StoredInstallmentAmount:   s.StoredInstallmentAmount,
		InstallmentAmountDrift:    s.InstallmentAmountDrift,
		PaidInstallments:          s.PaidInstallments,
		RemainingInstallments:     s.RemainingInstallments,
		NextInstallmentNumber:     s.NextInstallmentNumber,
		TotalPaid:                 s.TotalPaid,
		RemainingBalance:          s.RemainingBalance,
		DisplayRemainingBalance:   s.DisplayRemainingBalance,
		FormattedTotalPaid:        utils.FormatAmount(decimal.NewNullDecimal(s.TotalPaid), s.CurrencyCode, locale),
		FormattedRemainingBalance: utils.FormatAmount(decimal.NewNullDecimal(s.DisplayRemainingBalance), s.CurrencyCode, locale),
		Status:                    s.Status,
	}
	if s.Overdue != nil {
		resp.Overdue = &OverdueResponse{
			Overdue:     s.Overdue.Overdue,
			DaysElapsed: s.Overdue.DaysElapsed,
			Since:       s.Overdue.Since.Format(DateLayout),
			BasedOn:     s.Overdue.BasedOn,
		}
	}
	return resp
}

// ScheduledInstallmentResponse is one row of a payment plan.
type ScheduledInstallmentResponse struct {
	Number          int             `json:"number"`
	DueDate         string          `json:"dueDate"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formattedAmount"`
}

// ToScheduleResponse converts a schedule to DTOs.
func ToScheduleResponse(schedule []domain.ScheduledInstallment, currencyCode, locale string) []ScheduledInstallmentResponse {
	list := make([]ScheduledInstallmentResponse, len(schedule))
	for i, s := range schedule {
		list[i] = ScheduledInstallmentResponse{
			Number:          s.Number,
			DueDate:         s.DueDate.Format(DateLayout),
			Amount:          s.Amount,
			FormattedAmount: utils.FormatAmount(decimal.NewNullDecimal(s.Amount), currencyCode, locale),
		}
	}
	return list
}
