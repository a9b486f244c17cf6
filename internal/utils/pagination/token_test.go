package pagination_test

import (
	"testing"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	paidOn := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 11, 3, 14, 22, 51, 123456789, time.UTC)

	token := pagination.EncodeToken(paidOn, createdAt)
	require.NotEmpty(t, token)

	gotPaidOn, gotCreatedAt, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, paidOn.Equal(gotPaidOn))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "missing separator", token: "MjAyNS0xMS0wM1QwMDowMDowMFo="},
		{name: "garbage dates", token: "Zm9vfGJhcg=="}, // "foo|bar"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
