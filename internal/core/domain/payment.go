package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a recorded payment against a debt. Recording one
// reduces the debt's balance atomically, never below zero.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (e.g., UUID)
	DebtID    string          `json:"debtID"`    // FK -> debts.debt_id (NON-NULL)
	Amount    decimal.Decimal `json:"amount"`    // Always positive
	PaidOn    time.Time       `json:"paidOn"`    // Date the payment was made
	Note      string          `json:"note"`      // Optional user note
	AuditFields
}
