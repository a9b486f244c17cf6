package services

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
)

// PlannerSvcFacade is the engine's front door: it loads the caller's active
// debts, maps them into the payoff engine's account model, runs the
// requested projection and maps the result back out. The engine itself
// stays pure; every I/O concern lives here.
type PlannerSvcFacade interface {
	// SimulatePayoff projects the user's active debts under one strategy.
	SimulatePayoff(ctx context.Context, userID string, req dto.SimulatePayoffRequest) (*payoff.SimulationResult, error)

	// CompareStrategies runs baseline, snowball and avalanche projections
	// and derives the savings between the two strategies.
	CompareStrategies(ctx context.Context, userID string, req dto.CompareStrategiesRequest) (*payoff.SimulationComparison, error)

	// AllocateLumpSum distributes a one-time amount across the user's active
	// debts in a single greedy pass by rate.
	AllocateLumpSum(ctx context.Context, userID string, req dto.AllocateLumpSumRequest) (*payoff.LumpSumResult, error)

	// SimulateSingleDebt contrasts one debt with and without an extra
	// monthly contribution.
	SimulateSingleDebt(ctx context.Context, userID string, debtID string, req dto.SimulateSingleDebtRequest) (*payoff.SingleAccountResult, error)
}
