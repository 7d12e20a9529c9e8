package services

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
)

// RegulatorySvcFacade exposes the Japan import duty table.
type RegulatorySvcFacade interface {
	ListMakers(ctx context.Context) ([]string, error)
	ListModels(ctx context.Context, maker string) ([]string, error)
	ListGrades(ctx context.Context, maker, model string) ([]string, error)
	Lookup(ctx context.Context, maker, model, grade string) (*domain.DutyQuote, error)
	EstimateDuty(ctx context.Context, maker, model, grade, currencyCode string) (*domain.DutyEstimate, error)
}
