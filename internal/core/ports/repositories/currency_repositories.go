package repositories

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data. The currency
// directory is seeded by migration and read-only at runtime, so there is no
// writer interface.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade is the full currency repository surface.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
