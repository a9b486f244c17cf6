package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
)

// currencyService implements the CurrencySvcFacade interface. Currencies are
// seeded by migration, so the service only reads.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(repo portsrepo.CurrencyReader) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: repo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 characters", apperrors.ErrValidation)
	}
	return s.currencyRepo.FindCurrencyByCode(ctx, code)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}
