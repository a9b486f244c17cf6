package services

import (
	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Debt service first since payments and the planner depend on it
	container.Debt = NewDebtService(
		repos.DebtRepo,
		WithCurrencyRepository(repos.CurrencyRepo),
	)

	container.Payment = NewPaymentService(repos.DebtRepo, repos.PaymentRepo, container.Debt)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)

	// The projection engine is built once from configured policy knobs and
	// shared by every planner call.
	engine := payoff.NewEngine(
		payoff.WithMinimumPaymentPolicy(payoff.MinimumPaymentPolicy{
			FloorRatePercent: cfg.MinPaymentRatePercent,
			AbsoluteFloor:    cfg.MinPaymentFloor,
		}),
		payoff.WithHorizonMonths(cfg.SimulationHorizonMonths),
	)

	plannerOpts := []PlannerServiceOption{
		WithDefaultCurrency(cfg.DefaultCurrencyCode),
	}
	if repos.PlanCache != nil {
		plannerOpts = append(plannerOpts, WithPlanCache(repos.PlanCache))
	}
	container.Planner = NewPlannerService(repos.DebtRepo, engine, plannerOpts...)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
