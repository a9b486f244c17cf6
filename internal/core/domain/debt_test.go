package domain_test

import (
	"testing"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebt_MonthlyInterest(t *testing.T) {
	tests := []struct {
		name string
		debt domain.Debt
		want decimal.Decimal
	}{
		{
			name: "credit card at 24 percent",
			debt: domain.Debt{
				Balance:      decimal.NewFromInt(1_000_000),
				InterestRate: decimalPtr(decimal.NewFromInt(24)),
			},
			want: decimal.NewFromInt(20_000),
		},
		{
			name: "unknown rate accrues nothing",
			debt: domain.Debt{
				Balance:      decimal.NewFromInt(500_000),
				InterestRate: nil,
			},
			want: decimal.Zero,
		},
		{
			name: "zero balance",
			debt: domain.Debt{
				Balance:      decimal.Zero,
				InterestRate: decimalPtr(decimal.NewFromFloat(29.9)),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.debt.MonthlyInterest()
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestDebt_Utilization(t *testing.T) {
	tests := []struct {
		name string
		debt domain.Debt
		want decimal.Decimal
	}{
		{
			name: "half used line",
			debt: domain.Debt{
				Balance:     decimal.NewFromInt(2_500_000),
				CreditLimit: decimal.NewFromInt(5_000_000),
			},
			want: decimal.NewFromInt(50),
		},
		{
			name: "unknown limit short-circuits to zero",
			debt: domain.Debt{
				Balance:     decimal.NewFromInt(2_500_000),
				CreditLimit: decimal.Zero,
			},
			want: decimal.Zero,
		},
		{
			name: "negative limit short-circuits to zero",
			debt: domain.Debt{
				Balance:     decimal.NewFromInt(100),
				CreditLimit: decimal.NewFromInt(-1),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.debt.Utilization()
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
