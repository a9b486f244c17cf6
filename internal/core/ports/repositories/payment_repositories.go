package repositories

import (
	"context"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentsByDebt retrieves payments for a debt, newest first,
	// starting strictly after the cursor position (zero time means from the
	// top). Returns up to limit rows.
	FindPaymentsByDebt(ctx context.Context, debtID string, paidBefore time.Time, createdBefore time.Time, limit int) ([]domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
// Payment writes go through DebtWriter.ApplyPayment so the balance update
// and the payment row share one transaction.
type PaymentRepositoryFacade interface {
	PaymentReader
}
