package dto

import "github.com/SscSPs/dealership_finance_app/internal/core/domain"

// DateLayout is the wire format of every calendar date in requests and responses.
const DateLayout = "2006-01-02"

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyCode    string `json:"currencyCode"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Precision       int    `json:"precision"`
	PreferredLocale string `json:"preferredLocale"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:    c.CurrencyCode,
		Symbol:          c.Symbol,
		Name:            c.Name,
		Precision:       c.Precision,
		PreferredLocale: c.PreferredLocale,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	list := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		list[i] = ToCurrencyResponse(&currencies[i])
	}
	return list
}

// FormatAmountParams are the query parameters of the formatting endpoint.
type FormatAmountParams struct {
	Amount       string `form:"amount"`
	CurrencyCode string `form:"currency" binding:"required"`
	Locale       string `form:"locale"`
}

// FormatAmountResponse is a display string for an amount.
type FormatAmountResponse struct {
	Formatted string `json:"formatted"`
}
