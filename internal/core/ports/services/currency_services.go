package services

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
)

// CurrencySvcFacade defines the read-only currency directory surface.
// Currencies are seeded by migration; there are no write operations.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
