package repositories

import (
	"context"

	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
)

// PlanCache stores strategy comparison results keyed by a digest of the
// input set. Implementations must treat the cache as advisory: a miss or a
// failed read simply means the caller recomputes.
type PlanCache interface {
	// GetComparison returns the cached comparison for key, or found=false.
	GetComparison(ctx context.Context, key string) (*payoff.SimulationComparison, bool)

	// SetComparison stores a comparison under key. Failures are not
	// propagated beyond logging; caching is never load-bearing.
	SetComparison(ctx context.Context, key string, comparison *payoff.SimulationComparison)
}
