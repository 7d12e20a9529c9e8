package utils

import (
	"strings"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	moneymath "github.com/SscSPs/dealership_finance_app/internal/utils/accounting"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Placeholder is rendered for amounts that are missing or not numeric.
const Placeholder = "-"

// Amounts outside these bounds render as Placeholder. They are checked on the
// exponent and digit count, before any rescaling.
const (
	maxIntegerDigits = 15
	minExponent      = -64
)

// Locales the UI passes when the user has not picked one explicitly. They are
// replaced by the currency's preferred locale.
const (
	DefaultLocaleTR = "tr-TR"
	DefaultLocaleEN = "en-US"
)

// FormatAmount renders amount in currency for locale, e.g. "₺1.234,50" or "1.234,50 €".
// An invalid amount renders as Placeholder.
func FormatAmount(amount decimal.NullDecimal, currency, locale string) string {
	if !amount.Valid || !inFormattableRange(amount.Decimal) {
		return Placeholder
	}

	code := domain.NormalizeCurrencyCode(currency)
	symbol, precision := code, moneymath.MoneyPlaces
	cur, known := domain.LookupCurrency(code)
	if known {
		symbol, precision = cur.Symbol, cur.Precision
		if isDefaultLocale(locale) {
			locale = cur.PreferredLocale
		}
	}

	conv := conventionsFor(locale)
	format := "%s%v"
	switch {
	case !known:
		format = "%s %v" // unknown codes are shown as "XYZ 1,234.50"
	case conv.symbolAfter:
		format = "%v %s"
	}

	ac := accounting.Accounting{
		Symbol:         symbol,
		Precision:      precision,
		Thousand:       conv.thousand,
		Decimal:        conv.decimal,
		Format:         format,
		FormatNegative: "-" + format,
		FormatZero:     format,
	}
	value := amount.Decimal
	if value.IsZero() {
		value = decimal.Zero
	}
	return ac.FormatMoneyDecimal(value.Round(int32(precision)))
}

// FormatAmountString parses raw before formatting; blank or non-numeric input
// renders as Placeholder.
func FormatAmountString(raw, currency, locale string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Placeholder
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Placeholder
	}
	return FormatAmount(decimal.NewNullDecimal(d), currency, locale)
}

// FormatFloat formats a float amount; NaN and ±Inf render as Placeholder.
func FormatFloat(amount float64, currency, locale string) string {
	return FormatAmount(moneymath.FromFloat(amount), currency, locale)
}

// FormatRecordAmount formats an amount whose record may not carry a currency,
// falling back to defaultCurrency.
func FormatRecordAmount(amount decimal.NullDecimal, recordCurrency *string, defaultCurrency, locale string) string {
	currency := defaultCurrency
	if recordCurrency != nil && strings.TrimSpace(*recordCurrency) != "" {
		currency = *recordCurrency
	}
	return FormatAmount(amount, currency, locale)
}

// FormatWithPrecision formats an amount with the given precision as a plain number.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

func inFormattableRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := int64(d.Exponent())
	if exp < minExponent {
		return false
	}
	return int64(d.NumDigits())+exp <= maxIntegerDigits
}

func isDefaultLocale(locale string) bool {
	l := strings.TrimSpace(locale)
	return l == "" || strings.EqualFold(l, DefaultLocaleTR) || strings.EqualFold(l, DefaultLocaleEN)
}
