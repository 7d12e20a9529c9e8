package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates: the rate between two currencies effective on a date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // ISO 4217
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // ISO 4217
	Rate             decimal.Decimal `json:"rate"`             // NUMERIC(20,10)
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
