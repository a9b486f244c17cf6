package services_test

import (
	"context"
	"testing"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/deudalibre/debt_payoff_app/internal/core/payoff"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/core/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlanCache ---
type MockPlanCache struct {
	mock.Mock
}

func (m *MockPlanCache) GetComparison(ctx context.Context, key string) (*payoff.SimulationComparison, bool) {
	args := m.Called(ctx, key)
	var comparison *payoff.SimulationComparison
	if args.Get(0) != nil {
		comparison = args.Get(0).(*payoff.SimulationComparison)
	}
	return comparison, args.Bool(1)
}

func (m *MockPlanCache) SetComparison(ctx context.Context, key string, comparison *payoff.SimulationComparison) {
	m.Called(ctx, key, comparison)
}

// --- Test Suite ---
type PlannerServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	mockCache    *MockPlanCache
	service      portssvc.PlannerSvcFacade
}

func (suite *PlannerServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockCache = new(MockPlanCache)
	engine := payoff.NewEngine()
	suite.service = services.NewPlannerService(
		suite.mockDebtRepo,
		engine,
		services.WithPlanCache(suite.mockCache),
	)
}

func decRate(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func activeDebts(userID string) []domain.Debt {
	return []domain.Debt{
		{
			DebtID:         "debt-card",
			UserID:         userID,
			Name:           "Credit card",
			Kind:           domain.CreditCard,
			CurrencyCode:   "COP",
			Balance:        decimal.NewFromInt(1200000),
			InterestRate:   decRate(34.0),
			MonthlyPayment: decimal.NewFromInt(80000),
			IsActive:       true,
		},
		{
			DebtID:         "debt-loan",
			UserID:         userID,
			Name:           "Personal loan",
			Kind:           domain.PersonalLoan,
			CurrencyCode:   "COP",
			Balance:        decimal.NewFromInt(5000000),
			InterestRate:   decRate(18.5),
			MonthlyPayment: decimal.NewFromInt(250000),
			IsActive:       true,
		},
	}
}

// --- SimulatePayoff Tests ---

func (suite *PlannerServiceTestSuite) TestSimulatePayoff_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(activeDebts(userID), nil).Once()

	result, err := suite.service.SimulatePayoff(ctx, userID, dto.SimulatePayoffRequest{
		Strategy:            payoff.StrategySnowball,
		ExtraMonthlyPayment: 100000,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(payoff.StrategySnowball, result.Strategy)
	suite.Greater(result.TotalMonths, 0)
	suite.Greater(result.TotalInterestPaid, 0.0)
	suite.Len(result.PayoffOrder, 2)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *PlannerServiceTestSuite) TestSimulatePayoff_NoActiveDebts() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return([]domain.Debt{}, nil).Once()

	result, err := suite.service.SimulatePayoff(ctx, userID, dto.SimulatePayoffRequest{
		Strategy: payoff.StrategyAvalanche,
	})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CompareStrategies Tests ---

func (suite *PlannerServiceTestSuite) TestCompareStrategies_CacheMissComputesAndStores() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(activeDebts(userID), nil).Once()
	suite.mockCache.On("GetComparison", ctx, mock.AnythingOfType("string")).Return(nil, false).Once()
	suite.mockCache.On("SetComparison", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*payoff.SimulationComparison")).Once()

	comparison, err := suite.service.CompareStrategies(ctx, userID, dto.CompareStrategiesRequest{
		ExtraMonthlyPayment: 150000,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(comparison)
	suite.True(comparison.BestStrategy.IsValid())
	// Extra payments always beat the minimum-only baseline
	suite.Less(comparison.Avalanche.TotalMonths, comparison.Baseline.TotalMonths+1)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PlannerServiceTestSuite) TestCompareStrategies_CacheHitSkipsEngine() {
	ctx := context.Background()
	userID := uuid.NewString()
	cached := &payoff.SimulationComparison{BestStrategy: payoff.StrategyAvalanche}

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(activeDebts(userID), nil).Once()
	suite.mockCache.On("GetComparison", ctx, mock.AnythingOfType("string")).Return(cached, true).Once()

	comparison, err := suite.service.CompareStrategies(ctx, userID, dto.CompareStrategiesRequest{
		ExtraMonthlyPayment: 150000,
	})

	suite.Require().NoError(err)
	suite.Equal(cached, comparison)
	suite.mockCache.AssertNotCalled(suite.T(), "SetComparison", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlannerServiceTestSuite) TestCompareStrategies_WorksWithoutCache() {
	ctx := context.Background()
	userID := uuid.NewString()
	service := services.NewPlannerService(suite.mockDebtRepo, payoff.NewEngine())

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(activeDebts(userID), nil).Once()

	comparison, err := service.CompareStrategies(ctx, userID, dto.CompareStrategiesRequest{
		ExtraMonthlyPayment: 50000,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(comparison)
	suite.True(comparison.BestStrategy.IsValid())
}

// --- AllocateLumpSum Tests ---

func (suite *PlannerServiceTestSuite) TestAllocateLumpSum_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(activeDebts(userID), nil).Once()

	result, err := suite.service.AllocateLumpSum(ctx, userID, dto.AllocateLumpSumRequest{
		Amount:       500000,
		CurrencyCode: "cop",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Allocations)
	suite.InDelta(500000, result.TotalAllocated+result.Remaining, 0.01)
	// The highest-rate debt takes the money first
	suite.Equal("debt-card", result.Allocations[0].AccountID)
}

func (suite *PlannerServiceTestSuite) TestAllocateLumpSum_EmptyCurrencyUsesDefault() {
	ctx := context.Background()
	userID := uuid.NewString()
	service := services.NewPlannerService(
		suite.mockDebtRepo,
		payoff.NewEngine(),
		services.WithDefaultCurrency("cop"),
	)

	debts := activeDebts(userID)
	debts = append(debts, domain.Debt{
		DebtID:         "debt-usd",
		UserID:         userID,
		Name:           "Dollar loan",
		Kind:           domain.PersonalLoan,
		CurrencyCode:   "USD",
		Balance:        decimal.NewFromInt(3000),
		InterestRate:   decRate(9.5),
		MonthlyPayment: decimal.NewFromInt(150),
		IsActive:       true,
	})
	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(debts, nil).Once()

	result, err := service.AllocateLumpSum(ctx, userID, dto.AllocateLumpSumRequest{Amount: 500000})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	// Only the COP debts are in scope when the request names no currency
	suite.Len(result.Allocations, 2)
	for _, alloc := range result.Allocations {
		suite.NotEqual("debt-usd", alloc.AccountID)
	}
}

func (suite *PlannerServiceTestSuite) TestAllocateLumpSum_NoActiveDebts() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockDebtRepo.On("ListDebtsByUser", ctx, userID, true).Return(nil, nil).Once()

	result, err := suite.service.AllocateLumpSum(ctx, userID, dto.AllocateLumpSumRequest{Amount: 100000})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- SimulateSingleDebt Tests ---

func (suite *PlannerServiceTestSuite) TestSimulateSingleDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debts := activeDebts(userID)
	debt := debts[0]

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(&debt, nil).Once()

	result, err := suite.service.SimulateSingleDebt(ctx, userID, debt.DebtID, dto.SimulateSingleDebtRequest{
		ExtraMonthlyPayment: 50000,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.GreaterOrEqual(result.MonthsSaved, 0)
	suite.LessOrEqual(result.WithExtra.Months, result.WithoutExtra.Months)
}

func (suite *PlannerServiceTestSuite) TestSimulateSingleDebt_OtherUsersDebtReadsAsNotFound() {
	ctx := context.Background()
	owner := uuid.NewString()
	debts := activeDebts(owner)
	debt := debts[0]

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(&debt, nil).Once()

	result, err := suite.service.SimulateSingleDebt(ctx, uuid.NewString(), debt.DebtID, dto.SimulateSingleDebtRequest{
		ExtraMonthlyPayment: 50000,
	})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PlannerServiceTestSuite) TestSimulateSingleDebt_InactiveDebtRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	debt := activeDebts(userID)[1]
	debt.IsActive = false

	suite.mockDebtRepo.On("FindDebtByID", ctx, debt.DebtID).Return(&debt, nil).Once()

	result, err := suite.service.SimulateSingleDebt(ctx, userID, debt.DebtID, dto.SimulateSingleDebtRequest{
		ExtraMonthlyPayment: 50000,
	})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPlannerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlannerServiceTestSuite))
}
