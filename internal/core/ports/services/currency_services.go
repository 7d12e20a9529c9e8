package services

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a supported currency by its code or alias.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ResolveRate applies override > live precedence for the owner's pair.
	ResolveRate(ctx context.Context, ownerID, fromCode, toCode string) (*domain.RateQuote, error)

	// Convert converts amount using the resolved rate.
	Convert(ctx context.Context, ownerID string, amount decimal.Decimal, fromCode, toCode string) (*domain.Conversion, error)

	// GetExchangeRate retrieves the latest recorded rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate records a dated rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateOverrideSvc manages a user's rate overrides.
type ExchangeRateOverrideSvc interface {
	GetOverride(ctx context.Context, ownerID, fromCode, toCode string) (*domain.ExchangeRateOverride, error)
	SetOverride(ctx context.Context, ownerID, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRateOverride, error)
	ClearOverride(ctx context.Context, ownerID, fromCode, toCode string) error
	ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	ExchangeRateOverrideSvc
}
