package accounting

import (
	"math"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for derived money amounts.
const MoneyPlaces = 2

// FromFloat converts a float to a NullDecimal, marking NaN and ±Inf as invalid
// instead of panicking the way decimal.NewFromFloat does.
func FromFloat(f float64) decimal.NullDecimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

// Valid wraps a decimal as a present NullDecimal.
func Valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// Divide returns numerator/denominator, or zero when the denominator is absent or
// zero, or when either operand is absent (non-finite inputs arrive as absent via
// FromFloat). It never returns an error.
func Divide(numerator, denominator decimal.NullDecimal) decimal.Decimal {
	if !numerator.Valid || !denominator.Valid || denominator.Decimal.IsZero() {
		return decimal.Zero
	}
	return numerator.Decimal.Div(denominator.Decimal)
}

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
