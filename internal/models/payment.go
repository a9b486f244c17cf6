package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table.
type Payment struct {
	PaymentID string          `db:"payment_id"`
	DebtID    string          `db:"debt_id"`
	Amount    decimal.Decimal `db:"amount"`
	PaidOn    time.Time       `db:"paid_on"`
	Note      string          `db:"note"`
	AuditFields
}
