package pgsql

import (
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql-backed repository. The PlanCache
// field is left nil here; main attaches the Redis implementation when an
// address is configured.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	debtRepo := newPgxDebtRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		DebtRepo:     debtRepo,
		PaymentRepo:  paymentRepo,
		CurrencyRepo: currencyRepo,
		UserRepo:     userRepo,
	}
}
