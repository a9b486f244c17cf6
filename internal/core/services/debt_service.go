package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// debtService implements the DebtSvcFacade interface
type debtService struct {
	BaseService
	debtRepo     portsrepo.DebtRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// DebtServiceOption is a functional option for configuring the debt service
type DebtServiceOption func(*debtService)

// WithCurrencyRepository adds currency directory validation on create
func WithCurrencyRepository(repo portsrepo.CurrencyReader) DebtServiceOption {
	return func(s *debtService) {
		s.currencyRepo = repo
	}
}

// NewDebtService creates a new debt service with the provided options
func NewDebtService(repo portsrepo.DebtRepositoryFacade, options ...DebtServiceOption) portssvc.DebtSvcFacade {
	svc := &debtService{
		debtRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure debtService implements the DebtSvcFacade interface
var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
	}
	if req.InterestRate != nil && req.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
	}

	// Validate currency against the directory if currencyRepo is available
	if s.currencyRepo != nil {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
			s.LogError(ctx, err, "Invalid currency code",
				slog.String("currency_code", req.CurrencyCode))
			return nil, fmt.Errorf("invalid currency code: %w", err)
		}
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:         uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Kind:           req.Kind,
		CurrencyCode:   req.CurrencyCode,
		Balance:        req.Balance,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
		CreditLimit:    req.CreditLimit,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt",
			slog.String("debt_id", debt.DebtID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt created successfully",
		slog.String("debt_id", debt.DebtID),
		slog.String("user_id", userID))
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt by ID",
				slog.String("debt_id", debtID))
		}
		return nil, err // Propagate error (including NotFound)
	}

	// Ownership check: return NotFound to obscure existence from other users
	if debt.UserID != userID {
		s.LogDebug(ctx, "Debt found but belongs to different user",
			slog.String("debt_id", debtID),
			slog.String("requesting_user", userID))
		return nil, apperrors.ErrNotFound
	}

	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, userID string, activeOnly bool) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list debts for user %s: %w", userID, err)
	}

	if debts == nil {
		return []domain.Debt{}, nil // Return empty slice if repo returns nil
	}

	s.LogDebug(ctx, "Debts listed successfully",
		slog.Int("count", len(debts)),
		slog.String("user_id", userID))
	return debts, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	// Fetch the existing debt; also enforces ownership
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		debt.Name = *req.Name
		updated = true
	}
	if req.Balance != nil {
		if req.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
		}
		debt.Balance = *req.Balance
		updated = true
	}
	if req.InterestRate != nil {
		if req.InterestRate.IsNegative() {
			return nil, fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
		}
		debt.InterestRate = req.InterestRate
		updated = true
	}
	if req.MonthlyPayment != nil {
		debt.MonthlyPayment = *req.MonthlyPayment
		updated = true
	}
	if req.CreditLimit != nil {
		debt.CreditLimit = *req.CreditLimit
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for debt update",
			slog.String("debt_id", debtID))
		return debt, nil
	}

	now := time.Now()
	debt.LastUpdatedAt = now
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt",
			slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt updated successfully",
		slog.String("debt_id", debt.DebtID))
	return debt, nil
}

func (s *debtService) DeactivateDebt(ctx context.Context, userID string, debtID string) error {
	// Verify the debt exists and belongs to the user first
	if _, err := s.GetDebtByID(ctx, userID, debtID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.debtRepo.DeactivateDebt(ctx, debtID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate debt",
				slog.String("debt_id", debtID))
		}
		return err
	}

	s.LogInfo(ctx, "Debt deactivated successfully",
		slog.String("debt_id", debtID),
		slog.String("user_id", userID))
	return nil
}

// clampToZero returns d, or zero when d is negative. Payment application
// never drives a balance below zero.
func clampToZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
