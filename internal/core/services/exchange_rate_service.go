package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/utils/accounting"
	"github.com/SscSPs/dealership_finance_app/internal/utils/rates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiveRateNotice is attached to a quote served from an override because the live
// fetch failed.
const LiveRateNotice = "live rate could not be fetched; using your override"

// exchangeRateService resolves, converts and records exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo  portsrepo.ExchangeRateRepositoryFacade
	overrides portsrepo.ExchangeRateOverrideStore
	live      portsrepo.LiveRateSource
}

// ExchangeRateOption configures the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithExchangeRateClock replaces the service clock.
func WithExchangeRateClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new exchange rate service. live may be nil, in
// which case only identity and override rates resolve.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	overrides portsrepo.ExchangeRateOverrideStore,
	live portsrepo.LiveRateSource,
	options ...ExchangeRateOption,
) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:  rateRepo,
		overrides: overrides,
		live:      live,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func supportedPair(fromCode, toCode string) (domain.RatePair, error) {
	pair := domain.NewRatePair(fromCode, toCode)
	if !domain.IsSupportedCurrency(pair.From) {
		return pair, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, fromCode)
	}
	if !domain.IsSupportedCurrency(pair.To) {
		return pair, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, toCode)
	}
	return pair, nil
}

// ResolveRate fetches the live rate for every non-identity pair, then applies the
// precedence identity > override > live.
func (s *exchangeRateService) ResolveRate(ctx context.Context, ownerID, fromCode, toCode string) (*domain.RateQuote, error) {
	pair, err := supportedPair(fromCode, toCode)
	if err != nil {
		return nil, err
	}

	quote := &domain.RateQuote{FromCurrency: pair.From, ToCurrency: pair.To}
	if pair.IsIdentity() {
		quote.Rate, quote.Source, _ = rates.Resolve(pair.From, pair.To, decimal.NullDecimal{}, decimal.NullDecimal{})
		return quote, nil
	}

	override := s.lookupOverride(ctx, ownerID, pair)

	var liveErr error
	if s.live != nil {
		liveRate, err := s.live.FetchRate(ctx, pair.From, pair.To)
		if err != nil {
			liveErr = err
			s.LogWarn(ctx, "Live rate fetch failed", slog.String("pair", pair.Key()), slog.String("error", err.Error()))
		} else {
			quote.LiveRate = decimal.NewNullDecimal(liveRate)
		}
	} else {
		liveErr = errors.New("no live rate source configured")
	}

	rate, source, err := rates.Resolve(pair.From, pair.To, override, quote.LiveRate)
	if err != nil {
		if liveErr != nil {
			return nil, fmt.Errorf("%w (live: %v)", err, liveErr)
		}
		return nil, err
	}

	quote.Rate = rate
	quote.Source = source
	if source == domain.RateSourceOverride && liveErr != nil {
		quote.Notice = LiveRateNotice
	}
	return quote, nil
}

// lookupOverride returns the owner's override for pair, or null. Store failures
// are logged and treated as "no override" so the live rate can still serve.
func (s *exchangeRateService) lookupOverride(ctx context.Context, ownerID string, pair domain.RatePair) decimal.NullDecimal {
	if s.overrides == nil {
		return decimal.NullDecimal{}
	}
	o, err := s.overrides.GetOverride(ctx, ownerID, pair)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read rate override", slog.String("pair", pair.Key()))
		}
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(o.Rate)
}

func (s *exchangeRateService) Convert(ctx context.Context, ownerID string, amount decimal.Decimal, fromCode, toCode string) (*domain.Conversion, error) {
	quote, err := s.ResolveRate(ctx, ownerID, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return &domain.Conversion{
		Amount:    amount,
		Converted: accounting.RoundMoney(amount.Mul(quote.Rate)),
		Quote:     *quote,
	}, nil
}

// CreateExchangeRate records a dated rate. Recorded rates back the "db" live source.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	pair, err := supportedPair(req.FromCurrencyCode, req.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	if pair.IsIdentity() {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	dateEffective, err := time.Parse(dto.DateLayout, req.DateEffective)
	if err != nil {
		return nil, fmt.Errorf("%w: dateEffective must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := s.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: pair.From,
		ToCurrencyCode:   pair.To,
		Rate:             req.Rate,
		DateEffective:    dateEffective,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("pair", pair.Key()))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate recorded", slog.String("exchange_rate_id", rate.ExchangeRateID), slog.String("pair", pair.Key()))
	return &rate, nil
}

// GetExchangeRate retrieves the latest recorded rate for a pair.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	pair, err := supportedPair(fromCode, toCode)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, pair.From, pair.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

func (s *exchangeRateService) GetOverride(ctx context.Context, ownerID, fromCode, toCode string) (*domain.ExchangeRateOverride, error) {
	pair, err := supportedPair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return s.overrides.GetOverride(ctx, ownerID, pair)
}

// SetOverride stores rate as the owner's override for the pair, replacing any
// previous one.
func (s *exchangeRateService) SetOverride(ctx context.Context, ownerID, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRateOverride, error) {
	pair, err := supportedPair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	if pair.IsIdentity() {
		return nil, fmt.Errorf("%w: cannot override the rate of a currency to itself", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: override rate must be positive", apperrors.ErrValidation)
	}

	override := domain.ExchangeRateOverride{
		FromCurrency: pair.From,
		ToCurrency:   pair.To,
		Rate:         rate,
		SetAt:        s.Now(),
	}
	if err := s.overrides.SetOverride(ctx, ownerID, override); err != nil {
		s.LogError(ctx, err, "Failed to store rate override", slog.String("pair", pair.Key()))
		return nil, fmt.Errorf("failed to set override: %w", err)
	}

	s.LogInfo(ctx, "Rate override set", slog.String("pair", pair.Key()), slog.String("rate", rate.String()))
	return &override, nil
}

func (s *exchangeRateService) ClearOverride(ctx context.Context, ownerID, fromCode, toCode string) error {
	pair, err := supportedPair(fromCode, toCode)
	if err != nil {
		return err
	}
	if err := s.overrides.ClearOverride(ctx, ownerID, pair); err != nil {
		return fmt.Errorf("failed to clear override: %w", err)
	}
	s.LogInfo(ctx, "Rate override cleared", slog.String("pair", pair.Key()))
	return nil
}

func (s *exchangeRateService) ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error) {
	overrides, err := s.overrides.ListOverrides(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	if overrides == nil {
		return []domain.ExchangeRateOverride{}, nil
	}
	return overrides, nil
}
