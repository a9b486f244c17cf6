package services

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
)

// DebtReaderSvc defines read operations for debt data
type DebtReaderSvc interface {
	// GetDebtByID retrieves a specific debt owned by userID.
	GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error)

	// ListDebts retrieves the user's debts. When activeOnly is true,
	// deactivated debts are excluded.
	ListDebts(ctx context.Context, userID string, activeOnly bool) ([]domain.Debt, error)
}

// DebtWriterSvc defines write operations for debt data
type DebtWriterSvc interface {
	// CreateDebt persists a new debt for the user.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)

	// UpdateDebt updates an existing debt's details.
	UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeactivateDebt marks a debt as inactive.
	DeactivateDebt(ctx context.Context, userID string, debtID string) error
}

// DebtSvcFacade combines all debt-related service interfaces
// This is a facade for clients that need access to all operations
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
