package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
)

// plannerService is the engine's front door. It loads the caller's active
// debts, maps them into the payoff engine's float64 account model, runs the
// requested projection and returns the engine's result untouched. The engine
// stays pure; every I/O concern lives here.
type plannerService struct {
	BaseService
	debtRepo        portsrepo.DebtReader
	engine          *payoff.Engine
	cache           portsrepo.PlanCache
	defaultCurrency string
}

// PlannerServiceOption configures optional dependencies for the planner service.
type PlannerServiceOption func(*plannerService)

// WithPlanCache attaches a cache for strategy comparison results. Without it
// every comparison is computed fresh.
func WithPlanCache(cache portsrepo.PlanCache) PlannerServiceOption {
	return func(s *plannerService) {
		s.cache = cache
	}
}

// WithDefaultCurrency sets the currency a lump-sum allocation is scoped to
// when the request does not name one. Without it an empty request currency
// disables the filter.
func WithDefaultCurrency(code string) PlannerServiceOption {
	return func(s *plannerService) {
		s.defaultCurrency = strings.ToUpper(strings.TrimSpace(code))
	}
}

// NewPlannerService creates a new planner service around an engine.
func NewPlannerService(debtRepo portsrepo.DebtReader, engine *payoff.Engine, opts ...PlannerServiceOption) portssvc.PlannerSvcFacade {
	s := &plannerService{
		debtRepo: debtRepo,
		engine:   engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PlannerSvcFacade = (*plannerService)(nil)

// loadAccounts fetches the user's active debts and projects them into the
// engine's account model. Order is preserved: the engine uses input order to
// break priority ties, and the repository returns a stable ordering.
func (s *plannerService) loadAccounts(ctx context.Context, userID string) ([]payoff.Account, error) {
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debts for projection", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load debts for user %s: %w", userID, err)
	}

	accounts := make([]payoff.Account, 0, len(debts))
	for i := range debts {
		accounts = append(accounts, toAccount(&debts[i]))
	}
	return accounts, nil
}

func toAccount(d *domain.Debt) payoff.Account {
	return payoff.Account{
		ID:             d.DebtID,
		Name:           d.Name,
		Balance:        d.Balance.InexactFloat64(),
		InterestRate:   d.AnnualRateOrZero().InexactFloat64(),
		MonthlyPayment: d.MonthlyPayment.InexactFloat64(),
		CreditLimit:    d.CreditLimit.InexactFloat64(),
		Currency:       d.CurrencyCode,
	}
}

func (s *plannerService) SimulatePayoff(ctx context.Context, userID string, req dto.SimulatePayoffRequest) (*payoff.SimulationResult, error) {
	accounts, err := s.loadAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no active debts to simulate", apperrors.ErrValidation)
	}

	result := s.engine.RunSimulation(accounts, req.ExtraMonthlyPayment, req.Strategy)
	s.LogInfo(ctx, "Payoff simulation completed",
		slog.String("user_id", userID),
		slog.String("strategy", string(req.Strategy)),
		slog.Int("total_months", result.TotalMonths))
	return &result, nil
}

func (s *plannerService) CompareStrategies(ctx context.Context, userID string, req dto.CompareStrategiesRequest) (*payoff.SimulationComparison, error) {
	accounts, err := s.loadAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no active debts to compare", apperrors.ErrValidation)
	}

	key := comparisonCacheKey(accounts, req.ExtraMonthlyPayment)
	if s.cache != nil {
		if cached, found := s.cache.GetComparison(ctx, key); found {
			s.LogDebug(ctx, "Strategy comparison served from cache", slog.String("user_id", userID))
			return cached, nil
		}
	}

	comparison := s.engine.CompareStrategies(accounts, req.ExtraMonthlyPayment)
	if s.cache != nil {
		s.cache.SetComparison(ctx, key, &comparison)
	}

	s.LogInfo(ctx, "Strategy comparison completed",
		slog.String("user_id", userID),
		slog.String("best_strategy", string(comparison.BestStrategy)))
	return &comparison, nil
}

func (s *plannerService) AllocateLumpSum(ctx context.Context, userID string, req dto.AllocateLumpSumRequest) (*payoff.LumpSumResult, error) {
	accounts, err := s.loadAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no active debts to allocate against", apperrors.ErrValidation)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = s.defaultCurrency
	}
	result := s.engine.AllocateLumpSum(accounts, req.Amount, currency)
	return &result, nil
}

func (s *plannerService) SimulateSingleDebt(ctx context.Context, userID string, debtID string, req dto.SimulateSingleDebtRequest) (*payoff.SingleAccountResult, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.UserID != userID {
		// Hide other users' debt IDs behind not-found
		return nil, apperrors.ErrNotFound
	}
	if !debt.IsActive {
		return nil, fmt.Errorf("%w: debt %s is inactive", apperrors.ErrValidation, debtID)
	}

	result := s.engine.SimulateSingleAccount(toAccount(debt), req.ExtraMonthlyPayment)
	return &result, nil
}

// comparisonCacheKey derives a stable digest of everything the comparison
// depends on. Accounts are re-sorted by ID before hashing so the key does not
// change with listing order, and amounts are fixed to two decimals so float
// formatting noise cannot split otherwise identical inputs.
func comparisonCacheKey(accounts []payoff.Account, extraMonthly float64) string {
	sorted := make([]payoff.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var b strings.Builder
	b.WriteString("cmp:v1:")
	b.WriteString(strconv.FormatFloat(extraMonthly, 'f', 2, 64))
	for _, a := range sorted {
		b.WriteByte('|')
		b.WriteString(a.ID)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(a.Balance, 'f', 2, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(a.InterestRate, 'f', 4, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(a.MonthlyPayment, 'f', 2, 64))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "plan:" + hex.EncodeToString(sum[:])
}
