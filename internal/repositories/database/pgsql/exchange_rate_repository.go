package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/dealership_finance_app/internal/models"
	"github.com/SscSPs/dealership_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const exchangeRateColumns = `
	exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository stores dated exchange rates. It doubles as the "db"
// live rate source: FetchRate serves the latest recorded rate for a pair.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var (
	_ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)
	_ portsrepo.LiveRateSource               = (*PgxExchangeRateRepository)(nil)
)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode,
		&m.Rate, &m.DateEffective, &m.CreatedAt,
		&m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveExchangeRate inserts a rate, replacing any rate already recorded for the same
// pair and effective date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	pair := domain.NewRatePair(rate.FromCurrencyCode, rate.ToCurrencyCode)
	if pair.IsIdentity() {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	m := mapping.ToModelExchangeRate(rate)
	m.FromCurrencyCode = pair.From
	m.ToCurrencyCode = pair.To

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective)
		DO UPDATE SET rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode,
		m.Rate, m.DateEffective, m.CreatedAt,
		m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

// FindExchangeRate retrieves the most recent exchange rate between two currencies,
// falling back to the inverse of the most recent reverse rate.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	pair := domain.NewRatePair(fromCurrencyCode, toCurrencyCode)

	if pair.IsIdentity() {
		return &domain.ExchangeRate{
			FromCurrencyCode: pair.From,
			ToCurrencyCode:   pair.To,
			Rate:             decimal.NewFromInt(1),
			DateEffective:    time.Now().UTC().Truncate(24 * time.Hour),
		}, nil
	}

	directRate, err := r.findRate(ctx, pair.From, pair.To)
	if err == nil {
		return directRate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	inverseRate, err := r.findRate(ctx, pair.To, pair.From)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + pair.From + " to " + pair.To)
		}
		return nil, err
	}
	if !inverseRate.Rate.IsPositive() {
		return nil, apperrors.NewNotFoundError("no usable exchange rate for currency pair " + pair.From + " to " + pair.To)
	}
	inverseRate.FromCurrencyCode = pair.From
	inverseRate.ToCurrencyCode = pair.To
	inverseRate.Rate = decimal.NewFromInt(1).Div(inverseRate.Rate)
	return inverseRate, nil
}

// FetchRate implements LiveRateSource from recorded rates.
func (r *PgxExchangeRateRepository) FetchRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (decimal.Decimal, error) {
	rate, err := r.FindExchangeRate(ctx, fromCurrencyCode, toCurrencyCode)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

// findRate is a helper method to find the most recent exchange rate
func (r *PgxExchangeRateRepository) findRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC
		LIMIT 1;`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrency, toCurrency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE exchange_rate_id = $1;`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get exchange rate by ID", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}
