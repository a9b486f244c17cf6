package payoff

// Fallback constants for accounts that carry no fixed monthly payment: a
// share of the current balance with an absolute currency floor. The defaults
// model the common 2%-of-balance credit card minimum with a 25,000 COP floor.
const (
	DefaultFloorRatePercent = 2.0
	DefaultAbsoluteFloor    = 25000.0
)

// MinimumPaymentPolicy derives the required monthly payment for an account.
// A positive fixed MonthlyPayment on the account always wins; otherwise the
// payment is FloorRatePercent of the current balance, never below
// AbsoluteFloor.
type MinimumPaymentPolicy struct {
	FloorRatePercent float64 `json:"floorRatePercent"`
	AbsoluteFloor    float64 `json:"absoluteFloor"`
}

// DefaultMinimumPaymentPolicy returns the policy used when no overrides are
// configured.
func DefaultMinimumPaymentPolicy() MinimumPaymentPolicy {
	return MinimumPaymentPolicy{
		FloorRatePercent: DefaultFloorRatePercent,
		AbsoluteFloor:    DefaultAbsoluteFloor,
	}
}

// RequiredPayment returns the payment the account must make this month given
// its current working balance. For a settled account (zero balance) this is
// the amount its minimum frees up for the discretionary cascade.
func (p MinimumPaymentPolicy) RequiredPayment(account Account, balance float64) float64 {
	if account.MonthlyPayment > 0 {
		return account.MonthlyPayment
	}
	derived := balance * p.FloorRatePercent / 100
	if derived < p.AbsoluteFloor {
		return p.AbsoluteFloor
	}
	return derived
}
