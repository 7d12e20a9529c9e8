package services

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
)

// currencyService serves the fixed set of currencies the dealership trades in.
type currencyService struct {
	BaseService
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := domain.LookupCurrency(currencyCode)
	if !ok {
		s.LogDebug(ctx, "Unsupported currency requested", "currency_code", currencyCode)
		return nil, apperrors.NewNotFoundError("currency " + currencyCode + " is not supported")
	}
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}
