package payoff

import "math"

// run is the owned working state of one simulation: a mutable balance per
// account plus an active flag that latches off permanently once the account
// settles. Snapshots copy out of it, never alias it.
type run struct {
	policy   MinimumPaymentPolicy
	better   priorityComparator
	accounts []Account
	balances []float64
	active   []bool
	payoffs  []PayoffEvent
}

func newRun(accounts []Account, policy MinimumPaymentPolicy, strategy Strategy) *run {
	r := &run{
		policy:   policy,
		better:   strategy.comparator(),
		accounts: make([]Account, len(accounts)),
		balances: make([]float64, len(accounts)),
		active:   make([]bool, len(accounts)),
	}
	for i, acct := range accounts {
		// Coerce rather than fail: negative balances and rates read as zero.
		if acct.Balance < 0 {
			acct.Balance = 0
		}
		if acct.InterestRate < 0 {
			acct.InterestRate = 0
		}
		r.accounts[i] = acct
		if acct.Balance > BalanceEpsilon {
			r.balances[i] = acct.Balance
			r.active[i] = true
		}
		// Accounts that start at or below the epsilon are settled from the
		// outset and never enter the payoff order.
	}
	return r
}

// step advances the working state by exactly one month: accrue interest on
// active accounts, collect minimum payments, then cascade the extra budget
// plus any freed minimums through the priority order. Returns the interest
// accrued and the principal paid during the month.
func (r *run) step(month int, extraPayment float64) (monthInterest, monthPrincipal float64) {
	for i := range r.accounts {
		if !r.active[i] {
			continue
		}
		interest := monthlyInterest(r.balances[i], r.accounts[i].InterestRate)
		r.balances[i] += interest
		monthInterest += interest
	}

	freedMinimums := 0.0
	for i := range r.accounts {
		required := r.policy.RequiredPayment(r.accounts[i], r.balances[i])
		if !r.active[i] {
			// A settled account redirects its would-be minimum into the
			// discretionary pool.
			freedMinimums += required
			continue
		}
		payment := math.Min(required, r.balances[i])
		r.balances[i] -= payment
		monthPrincipal += payment
		r.settle(i, month)
	}

	// The waterfall: the pool keeps flowing to the current top-priority
	// account, re-selected after each payoff, so several accounts can clear
	// in the same month.
	pool := extraPayment + freedMinimums
	for pool > BalanceEpsilon {
		target := r.selectPriority()
		if target < 0 {
			break
		}
		payment := math.Min(pool, r.balances[target])
		r.balances[target] -= payment
		pool -= payment
		monthPrincipal += payment
		r.settle(target, month)
	}

	return monthInterest, monthPrincipal
}

// settle snaps a near-zero balance to exactly zero, retires the account for
// the remainder of the run, and records the month it paid off. Safe to call
// after every payment; it only fires once per account.
func (r *run) settle(i, month int) {
	if !r.active[i] || r.balances[i] > BalanceEpsilon {
		return
	}
	r.balances[i] = 0
	r.active[i] = false
	r.payoffs = append(r.payoffs, PayoffEvent{
		AccountID:   r.accounts[i].ID,
		AccountName: r.accounts[i].Name,
		Month:       month,
	})
}

// selectPriority picks the account that receives the next discretionary
// payment, or -1 when every account has settled. Ties keep the earlier
// account in input order because the comparator is strict.
func (r *run) selectPriority() int {
	best := -1
	for i := range r.accounts {
		if !r.active[i] {
			continue
		}
		if best == -1 || r.better(r.accounts, r.balances, i, best) {
			best = i
		}
	}
	return best
}

func (r *run) totalBalance() float64 {
	total := 0.0
	for _, b := range r.balances {
		total += b
	}
	return total
}

// snapshotBalances copies the working balances, keyed by account ID.
func (r *run) snapshotBalances() map[string]float64 {
	out := make(map[string]float64, len(r.accounts))
	for i, acct := range r.accounts {
		out[acct.ID] = r.balances[i]
	}
	return out
}

// monthlyInterest is one month of interest on a balance at a nominal annual
// percentage rate.
func monthlyInterest(balance, annualRatePercent float64) float64 {
	return balance * (annualRatePercent / 100) / 12
}
