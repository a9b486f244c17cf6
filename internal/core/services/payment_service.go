package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/deudalibre/debt_payoff_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	debtRepo    portsrepo.DebtRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	debtReader  portssvc.DebtReaderSvc
}

// NewPaymentService creates a new payment service. The debt reader enforces
// ownership; the debt repo applies the balance change transactionally.
func NewPaymentService(debtRepo portsrepo.DebtRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, debtReader portssvc.DebtReaderSvc) portssvc.PaymentSvcFacade {
	return &paymentService{
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		debtReader:  debtReader,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, userID string, debtID string, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	// Ownership check plus current balance in one read
	debt, err := s.debtReader.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	paidOn := now
	if req.PaidOn != nil {
		paidOn = *req.PaidOn
	}

	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		DebtID:    debtID,
		Amount:    req.Amount,
		PaidOn:    paidOn,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	newBalance := clampToZero(debt.Balance.Sub(req.Amount))
	if err := s.debtRepo.ApplyPayment(ctx, payment, newBalance); err != nil {
		s.LogError(ctx, err, "Failed to apply payment",
			slog.String("payment_id", payment.PaymentID),
			slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("debt_id", debtID),
		slog.String("new_balance", newBalance.String()))
	return &payment, nil
}

func (s *paymentService) ListPaymentsByDebt(ctx context.Context, userID string, debtID string, nextToken string, limit int) ([]domain.Payment, string, error) {
	// Ownership check before exposing payment history
	if _, err := s.debtReader.GetDebtByID(ctx, userID, debtID); err != nil {
		return nil, "", err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var paidBefore, createdBefore time.Time
	if nextToken != "" {
		var err error
		paidBefore, createdBefore, err = pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	// Fetch one extra row to learn whether another page exists
	payments, err := s.paymentRepo.FindPaymentsByDebt(ctx, debtID, paidBefore, createdBefore, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.String("debt_id", debtID))
		return nil, "", fmt.Errorf("failed to list payments for debt %s: %w", debtID, err)
	}

	token := ""
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		token = pagination.EncodeToken(last.PaidOn, last.CreatedAt)
	}

	return payments, token, nil
}
