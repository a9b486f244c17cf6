package payoff_test

import (
	"testing"

	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	"github.com/stretchr/testify/assert"
)

func TestMinimumPaymentPolicy_RequiredPayment(t *testing.T) {
	defaultPolicy := payoff.DefaultMinimumPaymentPolicy()

	tests := []struct {
		name    string
		policy  payoff.MinimumPaymentPolicy
		account payoff.Account
		balance float64
		want    float64
	}{
		{
			name:    "fixed payment wins over derivation",
			policy:  defaultPolicy,
			account: payoff.Account{MonthlyPayment: 50_000},
			balance: 1_000_000,
			want:    50_000,
		},
		{
			name:    "percentage when above the floor",
			policy:  defaultPolicy,
			account: payoff.Account{},
			balance: 5_000_000,
			want:    100_000,
		},
		{
			name:    "floor when percentage falls below it",
			policy:  defaultPolicy,
			account: payoff.Account{},
			balance: 100_000,
			want:    25_000,
		},
		{
			name:    "settled account still frees the floor",
			policy:  defaultPolicy,
			account: payoff.Account{},
			balance: 0,
			want:    25_000,
		},
		{
			name:    "zero fixed payment falls back to derivation",
			policy:  defaultPolicy,
			account: payoff.Account{MonthlyPayment: 0},
			balance: 5_000_000,
			want:    100_000,
		},
		{
			name:    "negative fixed payment falls back to derivation",
			policy:  defaultPolicy,
			account: payoff.Account{MonthlyPayment: -1},
			balance: 100_000,
			want:    25_000,
		},
		{
			name:    "custom percentage",
			policy:  payoff.MinimumPaymentPolicy{FloorRatePercent: 5, AbsoluteFloor: 10_000},
			account: payoff.Account{},
			balance: 1_000_000,
			want:    50_000,
		},
		{
			name:    "custom floor",
			policy:  payoff.MinimumPaymentPolicy{FloorRatePercent: 5, AbsoluteFloor: 10_000},
			account: payoff.Account{},
			balance: 100_000,
			want:    10_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.RequiredPayment(tt.account, tt.balance)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDefaultMinimumPaymentPolicy(t *testing.T) {
	policy := payoff.DefaultMinimumPaymentPolicy()
	assert.Equal(t, payoff.DefaultFloorRatePercent, policy.FloorRatePercent)
	assert.Equal(t, payoff.DefaultAbsoluteFloor, policy.AbsoluteFloor)
}
