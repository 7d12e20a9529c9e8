package pgsql

import (
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The recorded exchange
// rates also serve as the live rate source; callers replace LiveRateSource when rates
// come from the HTTP provider, and always set OverrideStore and RegulatorySource.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ExchangeRateRepo:    exchangeRateRepo,
		InstallmentSaleRepo: newPgxInstallmentSaleRepository(dbPool),
		PaymentRepo:         newPgxPaymentRepository(dbPool),
		LiveRateSource:      exchangeRateRepo,
	}
}
