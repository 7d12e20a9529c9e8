package repositories

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the latest recorded rate between two currencies.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
	// FindExchangeRateByID retrieves a recorded rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// LiveRateSource fetches the current rate for a pair from an external provider.
// Implementations make one request per call and keep no cache.
type LiveRateSource interface {
	FetchRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (decimal.Decimal, error)
}

// ExchangeRateOverrideStore keeps user-entered overrides, at most one per pair and
// owner. GetOverride returns apperrors.ErrNotFound when the pair has none.
type ExchangeRateOverrideStore interface {
	GetOverride(ctx context.Context, ownerID string, pair domain.RatePair) (*domain.ExchangeRateOverride, error)
	SetOverride(ctx context.Context, ownerID string, override domain.ExchangeRateOverride) error
	ClearOverride(ctx context.Context, ownerID string, pair domain.RatePair) error
	ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error)
}
