package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePair identifies a conversion direction. Codes are always normalized.
type RatePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewRatePair builds a RatePair from raw codes, resolving aliases.
func NewRatePair(from, to string) RatePair {
	return RatePair{From: NormalizeCurrencyCode(from), To: NormalizeCurrencyCode(to)}
}

// Key is the store key for the pair, e.g. "USD_TRY".
func (p RatePair) Key() string {
	return p.From + "_" + p.To
}

// IsIdentity reports whether both sides are the same currency.
func (p RatePair) IsIdentity() bool {
	return p.From == p.To
}

// ExchangeRateOverride is a user-entered rate that wins over any fetched rate for its pair.
type ExchangeRateOverride struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	SetAt        time.Time       `json:"setAt"`
}

// Pair returns the override's currency pair.
func (o ExchangeRateOverride) Pair() RatePair {
	return NewRatePair(o.FromCurrency, o.ToCurrency)
}

// RateSource records which rule of the precedence order produced a rate.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity"
	RateSourceOverride RateSource = "override"
	RateSourceLive     RateSource = "live"
)

// RateQuote is the resolved rate for a pair together with its provenance.
type RateQuote struct {
	FromCurrency string              `json:"fromCurrency"`
	ToCurrency   string              `json:"toCurrency"`
	Rate         decimal.Decimal     `json:"rate"`
	Source       RateSource          `json:"source"`
	LiveRate     decimal.NullDecimal `json:"liveRate"`
	Notice       string              `json:"notice,omitempty"` // set when the live fetch failed but an override applied
}

// Conversion is an amount converted with a RateQuote.
type Conversion struct {
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Quote     RateQuote       `json:"quote"`
}

// ExchangeRate is a dated rate recorded in the database.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
