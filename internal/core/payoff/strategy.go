package payoff

// Strategy selects which account receives discretionary funds first.
type Strategy string

const (
	// StrategySnowball pays the account with the smallest current balance first.
	StrategySnowball Strategy = "snowball"
	// StrategyAvalanche pays the account with the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
)

// IsValid reports whether s is a known strategy.
func (s Strategy) IsValid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

// priorityComparator reports whether account i outranks account j for the
// next discretionary payment, given the current working balances.
type priorityComparator func(accounts []Account, balances []float64, i, j int) bool

// comparator resolves the strategy to its ordering once per run. The
// comparison is strict, so equal keys keep the earlier account in input
// order. Unknown strategies fall back to the snowball ordering.
func (s Strategy) comparator() priorityComparator {
	if s == StrategyAvalanche {
		return func(accounts []Account, _ []float64, i, j int) bool {
			return accounts[i].InterestRate > accounts[j].InterestRate
		}
	}
	return func(_ []Account, balances []float64, i, j int) bool {
		return balances[i] < balances[j]
	}
}
