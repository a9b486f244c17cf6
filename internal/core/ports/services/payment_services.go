package services

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
)

// PaymentRecorderSvc defines write operations for payments
type PaymentRecorderSvc interface {
	// RecordPayment records a payment against a debt owned by userID and
	// reduces the debt's balance atomically, never below zero.
	RecordPayment(ctx context.Context, userID string, debtID string, req dto.RecordPaymentRequest) (*domain.Payment, error)
}

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	// ListPaymentsByDebt retrieves a cursor-paginated page of payments for a
	// debt owned by userID, newest first. An empty nextToken means the page
	// starts at the top.
	ListPaymentsByDebt(ctx context.Context, userID string, debtID string, nextToken string, limit int) ([]domain.Payment, string, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentRecorderSvc
	PaymentReaderSvc
}
