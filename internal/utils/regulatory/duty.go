// Package regulatory holds the Japan import duty bracket rules.
package regulatory

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var ccLabelPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*cc\s*$`)

// Duty brackets by engine displacement.
var (
	DutyRateSmall  = decimal.RequireFromString("0.03") // below 2000 cc
	DutyRateMedium = decimal.RequireFromString("0.06") // 2000 to 3000 cc inclusive
	DutyRateLarge  = decimal.RequireFromString("0.08") // above 3000 cc
)

// CCFromLabel extracts the displacement from labels such as "1498 CC" or "2494cc".
// Anything else yields 0, which callers treat as "unknown".
func CCFromLabel(label string) int {
	m := ccLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	cc, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return cc
}

// DutyRateForCC returns the duty fraction for a displacement.
func DutyRateForCC(cc int) decimal.Decimal {
	switch {
	case cc < 2000:
		return DutyRateSmall
	case cc <= 3000:
		return DutyRateMedium
	default:
		return DutyRateLarge
	}
}
