package payoff

const (
	// BalanceEpsilon is the threshold at or below which a balance is snapped
	// to exactly zero. The same threshold guards the cascade loop exit, so
	// floating-point remainders cannot keep a run alive.
	BalanceEpsilon = 0.01

	// DefaultHorizonMonths caps every projection at thirty years. The cap is
	// the sole termination guard for inputs whose minimum payments never
	// outrun interest.
	DefaultHorizonMonths = 360
)

// Engine runs debt payoff projections. The zero value is not usable; build
// one with NewEngine.
type Engine struct {
	policy        MinimumPaymentPolicy
	horizonMonths int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMinimumPaymentPolicy overrides the fallback minimum payment derivation.
func WithMinimumPaymentPolicy(policy MinimumPaymentPolicy) EngineOption {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithHorizonMonths overrides the projection cap. Non-positive values are
// ignored; the cap must stay bounded.
func WithHorizonMonths(months int) EngineOption {
	return func(e *Engine) {
		if months > 0 {
			e.horizonMonths = months
		}
	}
}

// NewEngine builds an Engine with the default policy and horizon, then
// applies the supplied options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		policy:        DefaultMinimumPaymentPolicy(),
		horizonMonths: DefaultHorizonMonths,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunSimulation projects the account set month by month under the given
// strategy until everything settles or the horizon cap is reached. A set
// whose balances are already all zero yields an empty timeline: the driver
// stops before simulating a month when nothing is owed, so payoff months
// never trail zero-balance snapshots.
func (e *Engine) RunSimulation(accounts []Account, extraMonthly float64, strategy Strategy) SimulationResult {
	if extraMonthly < 0 {
		extraMonthly = 0
	}
	r := newRun(accounts, e.policy, strategy)

	result := SimulationResult{Strategy: strategy}
	cumulativeInterest := 0.0
	for month := 1; month <= e.horizonMonths; month++ {
		if r.totalBalance() <= 0 {
			break
		}
		monthInterest, monthPrincipal := r.step(month, extraMonthly)
		cumulativeInterest += monthInterest
		result.TotalAmountPaid += monthPrincipal
		result.Timeline = append(result.Timeline, MonthSnapshot{
			Month:              month,
			Balances:           r.snapshotBalances(),
			TotalBalance:       r.totalBalance(),
			InterestPaid:       monthInterest,
			PrincipalPaid:      monthPrincipal,
			CumulativeInterest: cumulativeInterest,
		})
	}
	result.TotalInterestPaid = cumulativeInterest
	result.TotalMonths = len(result.Timeline)
	result.PayoffOrder = r.payoffs
	return result
}

// CompareStrategies projects the same account set three times: a baseline
// with no extra payment, then once per strategy with the extra applied.
// The baseline pays minimums only; freed minimums still cascade once an
// account settles, under the avalanche order. InterestSaved is snowball
// minus avalanche, and an exact tie reports snowball as best.
func (e *Engine) CompareStrategies(accounts []Account, extraMonthly float64) SimulationComparison {
	baseline := e.RunSimulation(accounts, 0, StrategyAvalanche)
	snowball := e.RunSimulation(accounts, extraMonthly, StrategySnowball)
	avalanche := e.RunSimulation(accounts, extraMonthly, StrategyAvalanche)

	interestSaved := snowball.TotalInterestPaid - avalanche.TotalInterestPaid
	best := StrategySnowball
	if interestSaved > 0 {
		best = StrategyAvalanche
	}

	return SimulationComparison{
		Baseline:         baseline,
		Snowball:         snowball,
		Avalanche:        avalanche,
		InterestSaved:    interestSaved,
		MonthsDifference: snowball.TotalMonths - avalanche.TotalMonths,
		BestStrategy:     best,
	}
}
