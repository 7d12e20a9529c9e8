package dto

import (
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DutyEstimateParams are the query parameters of the duty endpoint.
type DutyEstimateParams struct {
	Maker        string `form:"maker" binding:"required"`
	Model        string `form:"model" binding:"required"`
	Grade        string `form:"grade" binding:"required"`
	CurrencyCode string `form:"currency" binding:"omitempty,currency"` // empty: quote only
	Locale       string `form:"locale"`
}

// DutyQuoteResponse describes the duty bracket of one grade.
type DutyQuoteResponse struct {
	Maker                   string                         `json:"maker"`
	Model                   string                         `json:"model"`
	Grade                   string                         `json:"grade"`
	EngineDisplacementLabel string                         `json:"engineDisplacementLabel"`
	CC                      int                            `json:"cc"`
	DisplacementKnown       bool                           `json:"displacementKnown"`
	DutyRate                decimal.Decimal                `json:"dutyRate"`
	Values                  map[string]decimal.NullDecimal `json:"values"`
}

// ToDutyQuoteResponse converts a domain.DutyQuote to its DTO
func ToDutyQuoteResponse(q *domain.DutyQuote) DutyQuoteResponse {
	values := make(map[string]decimal.NullDecimal, len(q.Entry.Values))
	for code, v := range q.Entry.Values {
		if v == nil {
			values[code] = decimal.NullDecimal{}
			continue
		}
		values[code] = decimal.NewNullDecimal(*v)
	}
	return DutyQuoteResponse{
		Maker:                   q.Entry.MakerKey,
		Model:                   q.Entry.ModelKey,
		Grade:                   q.Entry.GradeKey,
		EngineDisplacementLabel: q.Entry.EngineDisplacementLabel,
		CC:                      q.CC,
		DisplacementKnown:       q.DisplacementKnown,
		DutyRate:                q.DutyRate,
		Values:                  values,
	}
}

// DutyEstimateResponse is a quote applied to a value in one currency.
type DutyEstimateResponse struct {
	Quote          DutyQuoteResponse `json:"quote"`
	CurrencyCode   string            `json:"currencyCode"`
	Value          decimal.Decimal   `json:"value"`
	Duty           decimal.Decimal   `json:"duty"`
	FormattedValue string            `json:"formattedValue"`
	FormattedDuty  string            `json:"formattedDuty"`
}

// ToDutyEstimateResponse converts a domain.DutyEstimate to its DTO
func ToDutyEstimateResponse(e *domain.DutyEstimate, locale string) DutyEstimateResponse {
	return DutyEstimateResponse{
		Quote:          ToDutyQuoteResponse(&e.Quote),
		CurrencyCode:   e.CurrencyCode,
		Value:          e.Value,
		Duty:           e.Duty,
		FormattedValue: utils.FormatAmount(decimal.NewNullDecimal(e.Value), e.CurrencyCode, locale),
		FormattedDuty:  utils.FormatAmount(decimal.NewNullDecimal(e.Duty), e.CurrencyCode, locale),
	}
}
