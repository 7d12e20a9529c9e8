package domain

import "github.com/shopspring/decimal"

// RegulatoryRateEntry is one trim/grade row of the Japan import duty table.
type RegulatoryRateEntry struct {
	MakerKey                string                      `json:"makerKey"`
	ModelKey                string                      `json:"modelKey"`
	GradeKey                string                      `json:"gradeKey"`
	EngineDisplacementLabel string                      `json:"engineDisplacementLabel"`
	Values                  map[string]*decimal.Decimal `json:"values"` // nil value: no figure for that currency
}

// RegulatoryTable is maker -> model -> grade -> entry.
type RegulatoryTable map[string]map[string]map[string]RegulatoryRateEntry

// DutyQuote is an entry plus the duty bracket derived from its displacement.
type DutyQuote struct {
	Entry             RegulatoryRateEntry `json:"entry"`
	CC                int                 `json:"cc"`
	DisplacementKnown bool                `json:"displacementKnown"` // false when the label did not parse and CC is 0
	DutyRate          decimal.Decimal     `json:"dutyRate"`
}

// DutyEstimate applies a DutyQuote to the entry's value in one currency.
type DutyEstimate struct {
	Quote        DutyQuote       `json:"quote"`
	CurrencyCode string          `json:"currencyCode"`
	Value        decimal.Decimal `json:"value"`
	Duty         decimal.Decimal `json:"duty"`
}
