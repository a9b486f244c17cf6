package payoff_test

import (
	"testing"

	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateLumpSum_HighestRateFundedFirst(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "a", Name: "Expensive card", Balance: 500_000, InterestRate: 30},
		{ID: "b", Name: "Cheap loan", Balance: 500_000, InterestRate: 10},
	}

	result := engine.AllocateLumpSum(accounts, 300_000, "")

	require.Len(t, result.Allocations, 2)

	top := result.Allocations[0]
	assert.Equal(t, "a", top.AccountID)
	assert.Equal(t, 300_000.0, top.Payment)
	assert.Equal(t, 200_000.0, top.NewBalance)
	// 500,000 at 30% costs 12,500 a month; 200,000 costs 5,000.
	assert.InDelta(t, 7_500, top.MonthlyInterestSaved, 1e-6)

	rest := result.Allocations[1]
	assert.Equal(t, "b", rest.AccountID)
	assert.Zero(t, rest.Payment)
	assert.Equal(t, 500_000.0, rest.NewBalance)
	assert.Zero(t, rest.MonthlyInterestSaved)

	assert.Equal(t, 300_000.0, result.TotalAllocated)
	assert.InDelta(t, 7_500, result.TotalMonthlyInterestSaved, 1e-6)
	assert.Zero(t, result.Remaining)
}

func TestAllocateLumpSum_CascadesThroughRateOrder(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "low", Name: "Low", Balance: 100_000, InterestRate: 20},
		{ID: "high", Name: "High", Balance: 150_000, InterestRate: 40},
		{ID: "mid", Name: "Mid", Balance: 200_000, InterestRate: 30},
	}

	result := engine.AllocateLumpSum(accounts, 200_000, "")

	require.Len(t, result.Allocations, 3)
	assert.Equal(t, "high", result.Allocations[0].AccountID)
	assert.Equal(t, "mid", result.Allocations[1].AccountID)
	assert.Equal(t, "low", result.Allocations[2].AccountID)

	assert.Equal(t, 150_000.0, result.Allocations[0].Payment)
	assert.Equal(t, 50_000.0, result.Allocations[1].Payment)
	assert.Equal(t, 150_000.0, result.Allocations[1].NewBalance)
	assert.Zero(t, result.Allocations[2].Payment)

	assert.Equal(t, 200_000.0, result.TotalAllocated)
	assert.Zero(t, result.Remaining)
}

func TestAllocateLumpSum_SurplusIsReported(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "a", Name: "Only debt", Balance: 450_000, InterestRate: 22},
	}

	result := engine.AllocateLumpSum(accounts, 1_000_000, "")

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, 450_000.0, result.Allocations[0].Payment)
	assert.Zero(t, result.Allocations[0].NewBalance)
	assert.Equal(t, 450_000.0, result.TotalAllocated)
	assert.Equal(t, 550_000.0, result.Remaining)
}

func TestAllocateLumpSum_CurrencyScope(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "cop", Name: "COP card", Balance: 300_000, InterestRate: 28, Currency: "COP"},
		{ID: "usd", Name: "USD card", Balance: 900, InterestRate: 35, Currency: "USD"},
	}

	scoped := engine.AllocateLumpSum(accounts, 100_000, "COP")
	require.Len(t, scoped.Allocations, 1)
	assert.Equal(t, "cop", scoped.Allocations[0].AccountID)

	// An empty scope considers every account; the USD card outranks on rate.
	unscoped := engine.AllocateLumpSum(accounts, 100_000, "")
	require.Len(t, unscoped.Allocations, 2)
	assert.Equal(t, "usd", unscoped.Allocations[0].AccountID)
}

func TestAllocateLumpSum_EqualRatesKeepInputOrder(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "first", Name: "First", Balance: 100_000, InterestRate: 15},
		{ID: "second", Name: "Second", Balance: 100_000, InterestRate: 15},
	}

	result := engine.AllocateLumpSum(accounts, 50_000, "")

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, "first", result.Allocations[0].AccountID)
	assert.Equal(t, 50_000.0, result.Allocations[0].Payment)
	assert.Zero(t, result.Allocations[1].Payment)
}

func TestAllocateLumpSum_Utilization(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "limited", Name: "Limited", Balance: 500_000, InterestRate: 25, CreditLimit: 1_000_000},
		{ID: "unlimited", Name: "No limit on file", Balance: 500_000, InterestRate: 20},
	}

	result := engine.AllocateLumpSum(accounts, 250_000, "")

	require.Len(t, result.Allocations, 2)
	limited := result.Allocations[0]
	assert.Equal(t, "limited", limited.AccountID)
	assert.InDelta(t, 50, limited.UtilizationBefore, 1e-9)
	assert.InDelta(t, 25, limited.UtilizationAfter, 1e-9)

	// Unknown credit limit never divides; utilization stays zero.
	unlimited := result.Allocations[1]
	assert.Zero(t, unlimited.UtilizationBefore)
	assert.Zero(t, unlimited.UtilizationAfter)
}

func TestAllocateLumpSum_SkipsSettledAccounts(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "done", Name: "Paid off", Balance: 0, InterestRate: 30},
		{ID: "open", Name: "Open", Balance: 200_000, InterestRate: 18},
	}

	result := engine.AllocateLumpSum(accounts, 100_000, "")

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "open", result.Allocations[0].AccountID)
}

func TestAllocateLumpSum_NonPositiveAmount(t *testing.T) {
	engine := payoff.NewEngine()
	accounts := []payoff.Account{
		{ID: "a", Name: "Card", Balance: 200_000, InterestRate: 18},
	}

	result := engine.AllocateLumpSum(accounts, -50_000, "")

	require.Len(t, result.Allocations, 1)
	assert.Zero(t, result.Allocations[0].Payment)
	assert.Equal(t, 200_000.0, result.Allocations[0].NewBalance)
	assert.Zero(t, result.TotalAllocated)
	assert.Zero(t, result.Remaining)
}
