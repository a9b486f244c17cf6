package domain

import (
	"github.com/shopspring/decimal"
)

// DebtKind classifies the liability a debt record represents.
type DebtKind string

const (
	CreditCard   DebtKind = "CREDIT_CARD"
	PersonalLoan DebtKind = "PERSONAL_LOAN"
	VehicleLoan  DebtKind = "VEHICLE_LOAN"
	Mortgage     DebtKind = "MORTGAGE"
	OtherDebt    DebtKind = "OTHER"
)

// Debt represents an interest-bearing liability owned by a user.
// This is the primary representation used by services; the payoff engine
// receives a float64 projection of it, built by the planner service.
type Debt struct {
	DebtID         string           `json:"debtID"`       // Primary Key (e.g., UUID)
	UserID         string           `json:"userID"`       // FK -> users.user_id (NON-NULL)
	Name           string           `json:"name"`         // User-defined label, e.g. "Visa Bancolombia"
	Kind           DebtKind         `json:"kind"`         // CREDIT_CARD, PERSONAL_LOAN, etc.
	CurrencyCode   string           `json:"currencyCode"` // FK -> currencies.code (NON-NULL)
	Balance        decimal.Decimal  `json:"balance"`      // Current amount owed, never negative
	InterestRate   *decimal.Decimal `json:"interestRate"` // Nominal annual rate in percent; nil when unknown
	MonthlyPayment decimal.Decimal  `json:"monthlyPayment"`
	CreditLimit    decimal.Decimal  `json:"creditLimit"` // Zero when unknown / not a revolving line
	IsActive       bool             `json:"isActive"`    // Soft delete or status flag
	AuditFields
}

// AnnualRateOrZero returns the debt's nominal annual rate in percent,
// treating an unknown rate as zero.
func (d *Debt) AnnualRateOrZero() decimal.Decimal {
	if d.InterestRate == nil {
		return decimal.Zero
	}
	return *d.InterestRate
}

// MonthlyInterest returns one month of interest on the current balance at
// the debt's annual rate. Unknown rates accrue nothing.
func (d *Debt) MonthlyInterest() decimal.Decimal {
	return d.Balance.Mul(d.AnnualRateOrZero()).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// Utilization returns the balance as a percentage of the credit limit.
// It returns zero when the limit is unknown or non-positive.
func (d *Debt) Utilization() decimal.Decimal {
	if d.CreditLimit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return d.Balance.Div(d.CreditLimit).Mul(decimal.NewFromInt(100))
}
