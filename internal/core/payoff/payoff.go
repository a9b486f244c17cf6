// Package payoff projects how a set of interest-bearing debts evolves month
// over month under competing payment-prioritization strategies. It answers
// three questions about putting money against debt: what a recurring extra
// monthly payment does under each strategy, how a one-time lump sum is best
// split across accounts, and what an extra payment does to a single account
// in isolation.
//
// The engine is pure and synchronous: every call allocates its own working
// state, performs no I/O, and returns plain data. Concurrent callers need no
// coordination.
package payoff

// Account is one interest-bearing liability as the projection sees it: a
// point-in-time snapshot supplied by the debt directory, never mutated here.
type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interestRate"`   // nominal annual rate in percent; 0 means unknown
	MonthlyPayment float64 `json:"monthlyPayment"` // fixed required payment; <= 0 derives from the minimum payment policy
	CreditLimit    float64 `json:"creditLimit"`    // <= 0 means unknown
	Currency       string  `json:"currency"`
}

// MonthSnapshot captures every account at the end of one simulated month.
// Balances is always a copy, keyed by account ID, zero once an account has
// settled.
type MonthSnapshot struct {
	Month              int                `json:"month"`
	Balances           map[string]float64 `json:"balances"`
	TotalBalance       float64            `json:"totalBalance"`
	InterestPaid       float64            `json:"interestPaid"`
	PrincipalPaid      float64            `json:"principalPaid"`
	CumulativeInterest float64            `json:"cumulativeInterest"`
}

// PayoffEvent records the month an account first reached a zero balance.
type PayoffEvent struct {
	AccountID   string `json:"accountID"`
	AccountName string `json:"accountName"`
	Month       int    `json:"month"`
}

// SimulationResult is the full projection for one strategy. TotalMonths is
// always the length of Timeline.
type SimulationResult struct {
	Strategy          Strategy        `json:"strategy"`
	TotalMonths       int             `json:"totalMonths"`
	TotalInterestPaid float64         `json:"totalInterestPaid"`
	TotalAmountPaid   float64         `json:"totalAmountPaid"`
	Timeline          []MonthSnapshot `json:"timeline"`
	PayoffOrder       []PayoffEvent   `json:"payoffOrder"`
}

// SimulationComparison bundles the minimum-only baseline with one projection
// per strategy and the savings between the two strategies. InterestSaved and
// MonthsDifference are snowball minus avalanche, so positive values favor
// avalanche.
type SimulationComparison struct {
	Baseline         SimulationResult `json:"baseline"`
	Snowball         SimulationResult `json:"snowball"`
	Avalanche        SimulationResult `json:"avalanche"`
	InterestSaved    float64          `json:"interestSaved"`
	MonthsDifference int              `json:"monthsDifference"`
	BestStrategy     Strategy         `json:"bestStrategy"`
}

// LumpSumAllocation is the share of a one-time amount applied to one account.
// Utilization figures are percentages of the credit limit and stay zero when
// the limit is unknown.
type LumpSumAllocation struct {
	AccountID            string  `json:"accountID"`
	AccountName          string  `json:"accountName"`
	Payment              float64 `json:"payment"`
	NewBalance           float64 `json:"newBalance"`
	MonthlyInterestSaved float64 `json:"monthlyInterestSaved"`
	UtilizationBefore    float64 `json:"utilizationBefore"`
	UtilizationAfter     float64 `json:"utilizationAfter"`
}

// LumpSumResult is the outcome of distributing a one-time amount across
// accounts by rate, highest first.
type LumpSumResult struct {
	Allocations               []LumpSumAllocation `json:"allocations"`
	TotalAllocated            float64             `json:"totalAllocated"`
	TotalMonthlyInterestSaved float64             `json:"totalMonthlyInterestSaved"`
	Remaining                 float64             `json:"remaining"`
}

// SingleAccountOutcome summarizes one projection of a lone account.
type SingleAccountOutcome struct {
	Months            int     `json:"months"`
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	TotalAmountPaid   float64 `json:"totalAmountPaid"`
}

// SingleAccountPoint aligns the with-extra and without-extra balances of a
// lone account for one month; a projection that has already ended reads as
// zero balance.
type SingleAccountPoint struct {
	Month               int     `json:"month"`
	BalanceWithoutExtra float64 `json:"balanceWithoutExtra"`
	BalanceWithExtra    float64 `json:"balanceWithExtra"`
}

// SingleAccountResult contrasts a lone account with and without an extra
// monthly contribution.
type SingleAccountResult struct {
	WithoutExtra  SingleAccountOutcome `json:"withoutExtra"`
	WithExtra     SingleAccountOutcome `json:"withExtra"`
	Timeline      []SingleAccountPoint `json:"timeline"`
	MonthsSaved   int                  `json:"monthsSaved"`
	InterestSaved float64              `json:"interestSaved"`
}
