package domain

import "strings"

// Supported currency codes.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyJPY = "JPY"
)

// currencyAliases maps colloquial names onto ISO codes. "TL" is how the lira is
// written on most dealer paperwork.
var currencyAliases = map[string]string{
	"TL": CurrencyTRY,
}

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode    string `json:"currencyCode"`    // e.g., "USD"
	Symbol          string `json:"symbol"`          // e.g., "$"
	Name            string `json:"name"`            // e.g., "US Dollar"
	Precision       int    `json:"precision"`       // minor unit digits shown to users
	PreferredLocale string `json:"preferredLocale"` // locale giving the best symbol/grouping rendering
}

var supportedCurrencies = []Currency{
	{CurrencyCode: CurrencyTRY, Symbol: "₺", Name: "Turkish Lira", Precision: 2, PreferredLocale: "tr-TR"},
	{CurrencyCode: CurrencyUSD, Symbol: "$", Name: "US Dollar", Precision: 2, PreferredLocale: "en-US"},
	{CurrencyCode: CurrencyEUR, Symbol: "€", Name: "Euro", Precision: 2, PreferredLocale: "de-DE"},
	{CurrencyCode: CurrencyGBP, Symbol: "£", Name: "British Pound", Precision: 2, PreferredLocale: "en-GB"},
	{CurrencyCode: CurrencyJPY, Symbol: "¥", Name: "Japanese Yen", Precision: 0, PreferredLocale: "ja-JP"},
}

// NormalizeCurrencyCode upper-cases and trims a code and resolves known aliases,
// so "tl", "TL" and "TRY" all yield "TRY".
func NormalizeCurrencyCode(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if iso, ok := currencyAliases[c]; ok {
		return iso
	}
	return c
}

// LookupCurrency returns the supported currency for code (aliases allowed).
func LookupCurrency(code string) (Currency, bool) {
	c := NormalizeCurrencyCode(code)
	for _, cur := range supportedCurrencies {
		if cur.CurrencyCode == c {
			return cur, true
		}
	}
	return Currency{}, false
}

// IsSupportedCurrency reports whether code names one of the supported currencies.
func IsSupportedCurrency(code string) bool {
	_, ok := LookupCurrency(code)
	return ok
}

// SupportedCurrencies returns a copy of the supported currency list.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}
