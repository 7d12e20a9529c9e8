package services

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/utils/accounting"
	"github.com/SscSPs/dealership_finance_app/internal/utils/regulatory"
)

// regulatoryService answers duty questions from the import duty table. The table is
// loaded on first use and kept for the life of the process; a failed load is not
// cached, so the next call retries.
type regulatoryService struct {
	BaseService
	source portsrepo.RegulatoryTableSource

	mu    sync.Mutex
	table domain.RegulatoryTable
}

// NewRegulatoryService creates a new regulatory service.
func NewRegulatoryService(source portsrepo.RegulatoryTableSource) portssvc.RegulatorySvcFacade {
	return &regulatoryService{source: source}
}

var _ portssvc.RegulatorySvcFacade = (*regulatoryService)(nil)

func (s *regulatoryService) loadTable(ctx context.Context) (domain.RegulatoryTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table != nil {
		return s.table, nil
	}
	table, err := s.source.LoadRegulatoryTable(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load regulatory table")
		return nil, fmt.Errorf("failed to load regulatory table: %w", err)
	}
	s.table = table
	s.LogInfo(ctx, "Regulatory table loaded", "makers", len(table))
	return table, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func (s *regulatoryService) ListMakers(ctx context.Context) ([]string, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(table)), nil
}

func (s *regulatoryService) ListModels(ctx context.Context, maker string) ([]string, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	models, ok := table[normalizeKey(maker)]
	if !ok {
		return nil, apperrors.NewNotFoundError("maker " + maker + " not found")
	}
	return slices.Sorted(maps.Keys(models)), nil
}

func (s *regulatoryService) ListGrades(ctx context.Context, maker, model string) ([]string, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	grades, ok := table[normalizeKey(maker)][normalizeKey(model)]
	if !ok {
		return nil, apperrors.NewNotFoundError("model " + maker + "/" + model + " not found")
	}
	return slices.Sorted(maps.Keys(grades)), nil
}

func (s *regulatoryService) Lookup(ctx context.Context, maker, model, grade string) (*domain.DutyQuote, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := table[normalizeKey(maker)][normalizeKey(model)][normalizeKey(grade)]
	if !ok {
		return nil, apperrors.NewNotFoundError("grade " + maker + "/" + model + "/" + grade + " not found")
	}

	cc := regulatory.CCFromLabel(entry.EngineDisplacementLabel)
	return &domain.DutyQuote{
		Entry:             entry,
		CC:                cc,
		DisplacementKnown: cc > 0,
		DutyRate:          regulatory.DutyRateForCC(cc),
	}, nil
}

// EstimateDuty applies the grade's duty rate to its value in currencyCode.
func (s *regulatoryService) EstimateDuty(ctx context.Context, maker, model, grade, currencyCode string) (*domain.DutyEstimate, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if !domain.IsSupportedCurrency(code) {
		return nil, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, currencyCode)
	}

	quote, err := s.Lookup(ctx, maker, model, grade)
	if err != nil {
		return nil, err
	}
	value := quote.Entry.Values[code]
	if value == nil {
		return nil, apperrors.NewNotFoundError("no " + code + " value for " + maker + "/" + model + "/" + grade)
	}

	return &domain.DutyEstimate{
		Quote:        *quote,
		CurrencyCode: code,
		Value:        *value,
		Duty:         accounting.RoundMoney(value.Mul(quote.DutyRate)),
	}, nil
}
