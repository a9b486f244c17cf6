package dto

import (
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to create a new debt.
type CreateDebtRequest struct {
	Name           string           `json:"name" binding:"required"`
	Kind           domain.DebtKind  `json:"kind" binding:"required,oneof=CREDIT_CARD PERSONAL_LOAN VEHICLE_LOAN MORTGAGE OTHER"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,len=3"`
	Balance        decimal.Decimal  `json:"balance" binding:"required"`
	InterestRate   *decimal.Decimal `json:"interestRate"` // Optional, annual percent; nil = unknown
	MonthlyPayment decimal.Decimal  `json:"monthlyPayment"`
	CreditLimit    decimal.Decimal  `json:"creditLimit"`
}

// UpdateDebtRequest defines the data allowed for updating a debt.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateDebtRequest struct {
	Name           *string          `json:"name"`
	Balance        *decimal.Decimal `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interestRate"`
	MonthlyPayment *decimal.Decimal `json:"monthlyPayment"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
}

// DebtResponse defines the data returned for a debt.
// Mirrors domain.Debt.
type DebtResponse struct {
	DebtID         string           `json:"debtID"`
	Name           string           `json:"name"`
	Kind           domain.DebtKind  `json:"kind"`
	CurrencyCode   string           `json:"currencyCode"`
	Balance        decimal.Decimal  `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interestRate"` // nil when unknown
	MonthlyPayment decimal.Decimal  `json:"monthlyPayment"`
	CreditLimit    decimal.Decimal  `json:"creditLimit"`
	Utilization    decimal.Decimal  `json:"utilization"` // Percent of limit, zero when limit unknown
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:         d.DebtID,
		Name:           d.Name,
		Kind:           d.Kind,
		CurrencyCode:   d.CurrencyCode,
		Balance:        d.Balance,
		InterestRate:   d.InterestRate,
		MonthlyPayment: d.MonthlyPayment,
		CreditLimit:    d.CreditLimit,
		Utilization:    d.Utilization(),
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ListDebtsParams defines query parameters for listing debts.
type ListDebtsParams struct {
	ActiveOnly bool `form:"activeOnly,default=true"`
}

// ListDebtsResponse wraps the list of debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToListDebtsResponse converts a slice of domain.Debt to ListDebtsResponse DTO
func ToListDebtsResponse(debts []domain.Debt) ListDebtsResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return ListDebtsResponse{Debts: res}
}
