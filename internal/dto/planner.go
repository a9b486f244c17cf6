package dto

import (
	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
)

// SimulatePayoffRequest asks for a month-by-month projection of the user's
// active debts under one strategy. The `payoffstrategy` validation is a
// custom binding rule registered at router setup.
type SimulatePayoffRequest struct {
	Strategy            payoff.Strategy `json:"strategy" binding:"required,payoffstrategy"`
	ExtraMonthlyPayment float64         `json:"extraMonthlyPayment" binding:"gte=0"`
}

// CompareStrategiesRequest asks for baseline, snowball and avalanche
// projections with the same recurring extra payment.
type CompareStrategiesRequest struct {
	ExtraMonthlyPayment float64 `json:"extraMonthlyPayment" binding:"gte=0"`
}

// AllocateLumpSumRequest asks how a one-time amount is best split across
// the user's debts. CurrencyCode scopes the allocation to debts held in
// that currency; when omitted the service falls back to its configured
// default currency.
type AllocateLumpSumRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	CurrencyCode string  `json:"currencyCode" binding:"omitempty,len=3"`
}

// SimulateSingleDebtRequest asks what an extra monthly contribution does to
// one debt in isolation. Zero is allowed and yields identical projections.
type SimulateSingleDebtRequest struct {
	ExtraMonthlyPayment float64 `json:"extraMonthlyPayment" binding:"gte=0"`
}

// SimulationResponse wraps an engine projection for transport. The engine's
// result types carry their own json tags, so the wrapper only adds the
// envelope handlers expect.
type SimulationResponse struct {
	Result *payoff.SimulationResult `json:"result"`
}

// ComparisonResponse wraps a strategy comparison plus whether it was served
// from cache.
type ComparisonResponse struct {
	Comparison *payoff.SimulationComparison `json:"comparison"`
}

// LumpSumResponse wraps a lump-sum allocation.
type LumpSumResponse struct {
	Result *payoff.LumpSumResult `json:"result"`
}

// SingleDebtResponse wraps a single-debt contrast.
type SingleDebtResponse struct {
	Result *payoff.SingleAccountResult `json:"result"`
}
