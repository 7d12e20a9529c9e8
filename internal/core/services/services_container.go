package services

import (
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, repos.OverrideStore, repos.LiveRateSource),
		Installment: NewInstallmentService(
			repos.InstallmentSaleRepo,
			repos.PaymentRepo,
			WithOverdueThreshold(cfg.OverdueThresholdDays),
		),
		Regulatory: NewRegulatoryService(repos.RegulatorySource),
	}
}
