package models

import (
	"github.com/shopspring/decimal"
)

// DebtKind classifies the liability a debt row represents.
type DebtKind string

const (
	CreditCard   DebtKind = "CREDIT_CARD"
	PersonalLoan DebtKind = "PERSONAL_LOAN"
	VehicleLoan  DebtKind = "VEHICLE_LOAN"
	Mortgage     DebtKind = "MORTGAGE"
	OtherDebt    DebtKind = "OTHER"
)

// Debt represents a row of the debts table.
// Note: InterestRate is nullable; NULL means the rate is unknown.
type Debt struct {
	DebtID         string           `db:"debt_id"`
	UserID         string           `db:"user_id"`
	Name           string           `db:"name"`
	Kind           DebtKind         `db:"kind"`
	CurrencyCode   string           `db:"currency_code"`
	Balance        decimal.Decimal  `db:"balance"`
	InterestRate   *decimal.Decimal `db:"interest_rate"` // Nullable
	MonthlyPayment decimal.Decimal  `db:"monthly_payment"`
	CreditLimit    decimal.Decimal  `db:"credit_limit"`
	IsActive       bool             `db:"is_active"`
	AuditFields
}
