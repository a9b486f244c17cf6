package repositories

import (
	"context"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	// FindDebtByID retrieves a specific debt by its ID.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebtsByUser retrieves all debts owned by a user, active first.
	// When activeOnly is true, deactivated debts are excluded.
	ListDebtsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt updates an existing debt's details.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// ApplyPayment reduces a debt's balance by the given amount (never below
	// zero) and records the payment row in the same transaction.
	ApplyPayment(ctx context.Context, payment domain.Payment, newBalance decimal.Decimal) error

	// DeactivateDebt marks a debt as inactive.
	DeactivateDebt(ctx context.Context, debtID string, userID string, now time.Time) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces.
// This is a facade for clients that need access to all operations
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
