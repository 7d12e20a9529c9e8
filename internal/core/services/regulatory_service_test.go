package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testRegulatoryTable() domain.RegulatoryTable {
	return domain.RegulatoryTable{
		"toyota": {
			"corolla": {
				"hybrid": {MakerKey: "toyota", ModelKey: "corolla", GradeKey: "hybrid", EngineDisplacementLabel: "1798 CC",
					Values: map[string]*decimal.Decimal{"JPY": decPtr("3000000"), "USD": decPtr("20000"), "EUR": nil}},
			},
			"land_cruiser": {
				"zx": {MakerKey: "toyota", ModelKey: "land_cruiser", GradeKey: "zx", EngineDisplacementLabel: "3345cc",
					Values: map[string]*decimal.Decimal{"USD": decPtr("80000")}},
				"gx": {MakerKey: "toyota", ModelKey: "land_cruiser", GradeKey: "gx", EngineDisplacementLabel: "2.8L diesel",
					Values: map[string]*decimal.Decimal{"USD": decPtr("60000")}},
			},
		},
		"mazda": {
			"cx-5": {
				"25s": {MakerKey: "mazda", ModelKey: "cx-5", GradeKey: "25s", EngineDisplacementLabel: "2488 CC",
					Values: map[string]*decimal.Decimal{"USD": decPtr("30000")}},
			},
		},
	}
}

func TestRegulatoryService_LoadsTableOnce(t *testing.T) {
	source := new(MockRegulatorySource)
	ctx := context.Background()
	source.On("LoadRegulatoryTable", ctx).Return(testRegulatoryTable(), nil).Once()
	svc := services.NewRegulatoryService(source)

	makers, err := svc.ListMakers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mazda", "toyota"}, makers)

	models, err := svc.ListModels(ctx, "Toyota")
	require.NoError(t, err)
	assert.Equal(t, []string{"corolla", "land_cruiser"}, models)

	grades, err := svc.ListGrades(ctx, "toyota", "land_cruiser")
	require.NoError(t, err)
	assert.Equal(t, []string{"gx", "zx"}, grades)

	source.AssertExpectations(t)
	source.AssertNumberOfCalls(t, "LoadRegulatoryTable", 1)
}

func TestRegulatoryService_RetriesAfterFailedLoad(t *testing.T) {
	source := new(MockRegulatorySource)
	ctx := context.Background()
	source.On("LoadRegulatoryTable", ctx).Return(nil, errors.New("disk on fire")).Once()
	source.On("LoadRegulatoryTable", ctx).Return(testRegulatoryTable(), nil).Once()
	svc := services.NewRegulatoryService(source)

	_, err := svc.ListMakers(ctx)
	require.Error(t, err)

	makers, err := svc.ListMakers(ctx)
	require.NoError(t, err)
	assert.Len(t, makers, 2)
	source.AssertExpectations(t)
}

func TestRegulatoryService_Lookup(t *testing.T) {
	source := new(MockRegulatorySource)
	ctx := context.Background()
	source.On("LoadRegulatoryTable", mock.Anything).Return(testRegulatoryTable(), nil).Once()
	svc := services.NewRegulatoryService(source)

	tests := []struct {
		name      string
		maker     string
		model     string
		grade     string
		wantCC    int
		wantKnown bool
		wantRate  string
	}{
		{name: "small engine", maker: "toyota", model: "corolla", grade: "hybrid", wantCC: 1798, wantKnown: true, wantRate: "0.03"},
		{name: "medium engine", maker: "mazda", model: "cx-5", grade: "25s", wantCC: 2488, wantKnown: true, wantRate: "0.06"},
		{name: "large engine", maker: "toyota", model: "land_cruiser", grade: "zx", wantCC: 3345, wantKnown: true, wantRate: "0.08"},
		{name: "unparseable label", maker: "toyota", model: "land_cruiser", grade: "gx", wantCC: 0, wantKnown: false, wantRate: "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.Lookup(ctx, tt.maker, tt.model, tt.grade)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCC, quote.CC)
			assert.Equal(t, tt.wantKnown, quote.DisplacementKnown)
			assert.True(t, decimal.RequireFromString(tt.wantRate).Equal(quote.DutyRate), "got %s", quote.DutyRate)
		})
	}

	_, err := svc.Lookup(ctx, "toyota", "corolla", "gr")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.ListModels(ctx, "subaru")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegulatoryService_EstimateDuty(t *testing.T) {
	source := new(MockRegulatorySource)
	ctx := context.Background()
	source.On("LoadRegulatoryTable", mock.Anything).Return(testRegulatoryTable(), nil).Once()
	svc := services.NewRegulatoryService(source)

	estimate, err := svc.EstimateDuty(ctx, "toyota", "corolla", "hybrid", "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("600").Equal(estimate.Duty), "got %s", estimate.Duty)
	assert.Equal(t, "USD", estimate.CurrencyCode)

	estimate, err = svc.EstimateDuty(ctx, "toyota", "land_cruiser", "zx", "usd")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6400").Equal(estimate.Duty))

	_, err = svc.EstimateDuty(ctx, "toyota", "corolla", "hybrid", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "null value")

	_, err = svc.EstimateDuty(ctx, "toyota", "corolla", "hybrid", "TRY")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "missing value")

	_, err = svc.EstimateDuty(ctx, "toyota", "corolla", "hybrid", "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
