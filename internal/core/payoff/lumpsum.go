package payoff

import (
	"math"
	"sort"
)

// AllocateLumpSum distributes a one-time amount across the accounts in a
// single greedy pass ordered by interest rate, highest first. This is a
// static allocation, not a projection: MonthlyInterestSaved reflects only
// the immediate effect on one month of interest at today's balances. A
// non-empty currency restricts the allocation to accounts held in that
// currency; accounts with nothing owed are excluded either way. Accounts the
// pool cannot reach still appear, with a zero payment and their balance
// unchanged.
func (e *Engine) AllocateLumpSum(accounts []Account, amount float64, currency string) LumpSumResult {
	if amount < 0 {
		amount = 0
	}

	candidates := make([]Account, 0, len(accounts))
	for _, acct := range accounts {
		if acct.Balance <= 0 {
			continue
		}
		if currency != "" && acct.Currency != currency {
			continue
		}
		if acct.InterestRate < 0 {
			acct.InterestRate = 0
		}
		candidates = append(candidates, acct)
	}
	// Stable sort keeps equal rates in input order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].InterestRate > candidates[j].InterestRate
	})

	result := LumpSumResult{Allocations: make([]LumpSumAllocation, 0, len(candidates))}
	remaining := amount
	for _, acct := range candidates {
		alloc := LumpSumAllocation{
			AccountID:         acct.ID,
			AccountName:       acct.Name,
			NewBalance:        acct.Balance,
			UtilizationBefore: utilization(acct.Balance, acct.CreditLimit),
		}
		if remaining > BalanceEpsilon {
			payment := math.Min(remaining, acct.Balance)
			alloc.Payment = payment
			alloc.NewBalance = acct.Balance - payment
			alloc.MonthlyInterestSaved = monthlyInterest(acct.Balance, acct.InterestRate) -
				monthlyInterest(alloc.NewBalance, acct.InterestRate)
			remaining -= payment
			result.TotalAllocated += payment
			result.TotalMonthlyInterestSaved += alloc.MonthlyInterestSaved
		}
		alloc.UtilizationAfter = utilization(alloc.NewBalance, acct.CreditLimit)
		result.Allocations = append(result.Allocations, alloc)
	}
	result.Remaining = remaining
	return result
}

// utilization returns the balance as a percentage of the credit limit. An
// unknown or non-positive limit short-circuits to zero rather than dividing.
func utilization(balance, creditLimit float64) float64 {
	if creditLimit <= 0 {
		return 0
	}
	return balance / creditLimit * 100
}
