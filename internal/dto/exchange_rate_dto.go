package dto

import (
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for recording a dated exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,currency"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,currency"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    string          `json:"dateEffective" binding:"required,datetime=2006-01-02"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    string          `json:"dateEffective"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective.Format(DateLayout),
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}

// RateQuoteResponse is the resolved rate for a pair.
type RateQuoteResponse struct {
	FromCurrencyCode string              `json:"fromCurrencyCode"`
	ToCurrencyCode   string              `json:"toCurrencyCode"`
	Rate             decimal.Decimal     `json:"rate"`
	Source           domain.RateSource   `json:"source"`
	LiveRate         decimal.NullDecimal `json:"liveRate"`
	Notice           string              `json:"notice,omitempty"`
}

// ToRateQuoteResponse converts a domain.RateQuote to its DTO
func ToRateQuoteResponse(q *domain.RateQuote) RateQuoteResponse {
	return RateQuoteResponse{
		FromCurrencyCode: q.FromCurrency,
		ToCurrencyCode:   q.ToCurrency,
		Rate:             q.Rate,
		Source:           q.Source,
		LiveRate:         q.LiveRate,
		Notice:           q.Notice,
	}
}

// ConvertRequest asks for an amount to be converted between two currencies.
type ConvertRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,currency"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,currency"`
	Locale           string          `json:"locale"`
}

// ConversionResponse carries the converted amount both raw and formatted.
type ConversionResponse struct {
	Amount             decimal.Decimal   `json:"amount"`
	Converted          decimal.Decimal   `json:"converted"`
	FormattedAmount    string            `json:"formattedAmount"`
	FormattedConverted string            `json:"formattedConverted"`
	Quote              RateQuoteResponse `json:"quote"`
}

// ToConversionResponse converts a domain.Conversion, formatting both amounts for locale.
func ToConversionResponse(c *domain.Conversion, locale string) ConversionResponse {
	return ConversionResponse{
		Amount:             c.Amount,
		Converted:          c.Converted,
		FormattedAmount:    utils.FormatAmount(decimal.NewNullDecimal(c.Amount), c.Quote.FromCurrency, locale),
		FormattedConverted: utils.FormatAmount(decimal.NewNullDecimal(c.Converted), c.Quote.ToCurrency, locale),
		Quote:              ToRateQuoteResponse(&c.Quote),
	}
}

// SetOverrideRequest sets the user's rate for a pair.
type SetOverrideRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// OverrideResponse describes one stored override.
type OverrideResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	SetAt            time.Time       `json:"setAt"`
}

// ToOverrideResponse converts a domain.ExchangeRateOverride to its DTO
func ToOverrideResponse(o *domain.ExchangeRateOverride) OverrideResponse {
	return OverrideResponse{
		FromCurrencyCode: o.FromCurrency,
		ToCurrencyCode:   o.ToCurrency,
		Rate:             o.Rate,
		SetAt:            o.SetAt,
	}
}

// ToListOverrideResponse converts overrides to DTOs.
func ToListOverrideResponse(overrides []domain.ExchangeRateOverride) []OverrideResponse {
	list := make([]OverrideResponse, len(overrides))
	for i := range overrides {
		list[i] = ToOverrideResponse(&overrides[i])
	}
	return list
}
