// Package rates picks the exchange rate to use for a currency pair.
package rates

import (
	"fmt"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Resolve applies the precedence identity > override > live. Codes may be aliases.
// A non-positive override or live rate counts as absent. When neither is usable the
// result is ErrRateUnavailable, never an implicit rate of 1.
func Resolve(from, to string, override, live decimal.NullDecimal) (decimal.Decimal, domain.RateSource, error) {
	pair := domain.NewRatePair(from, to)
	if pair.IsIdentity() {
		return decimal.NewFromInt(1), domain.RateSourceIdentity, nil
	}
	if usable(override) {
		return override.Decimal, domain.RateSourceOverride, nil
	}
	if usable(live) {
		return live.Decimal, domain.RateSourceLive, nil
	}
	return decimal.Zero, "", fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, pair.Key())
}

func usable(d decimal.NullDecimal) bool {
	return d.Valid && d.Decimal.IsPositive()
}
