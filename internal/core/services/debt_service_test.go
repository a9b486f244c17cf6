package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/core/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	var debt *domain.Debt
	if args.Get(0) != nil {
		debt = args.Get(0).(*domain.Debt)
	}
	return debt, args.Error(1)
}

func (m *MockDebtRepository) ListDebtsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Debt, error) {
	args := m.Called(ctx, userID, activeOnly)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) ApplyPayment(ctx context.Context, payment domain.Payment, newBalance decimal.Decimal) error {
	args := m.Called(ctx, payment, newBalance)
	return args.Error(0)
}

func (m *MockDebtRepository) DeactivateDebt(ctx context.Context, debtID string, userID string, now time.Time) error {
	args := m.Called(ctx, debtID, userID, now)
	return args.Error(0)
}

// --- Mock CurrencyReader ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	var curr *domain.Currency
	if args.Get(0) != nil {
		curr = args.Get(0).(*domain.Currency)
	}
	return curr, args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

// --- Test Suite ---
type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo     *MockDebtRepository
	mockCurrencyRepo *MockCurrencyReader
	service          portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.service = services.NewDebtService(
		suite.mockDebtRepo,
		services.WithCurrencyRepository(suite.mockCurrencyRepo),
	)
}

// --- CreateDebt Tests ---

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	rate := decimal.NewFromFloat(32.5)

	req := dto.CreateDebtRequest{
		Name:           "Visa Bancolombia",
		Kind:           domain.CreditCard,
		CurrencyCode:   "COP",
		Balance:        decimal.NewFromInt(2500000),
		InterestRate:   &rate,
		MonthlyPayment: decimal.NewFromInt(150000),
		CreditLimit:    decimal.NewFromInt(5000000),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "COP").Return(&domain.Currency{CurrencyCode: "COP"}, nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.UserID == userID && d.Name == req.Name && d.IsActive && d.Balance.Equal(req.Balance)
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.NotEmpty(debt.DebtID)
	suite.Equal(userID, debt.UserID)
	suite.True(debt.IsActive)
	suite.Equal(userID, debt.CreatedBy)

	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NegativeBalance() {
	ctx := context.Background()

	req := dto.CreateDebtRequest{
		Name:         "Bad debt",
		Kind:         domain.OtherDebt,
		CurrencyCode: "COP",
		Balance:      decimal.NewFromInt(-100),
	}

	debt, err := suite.service.CreateDebt(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_UnknownCurrency() {
	ctx := context.Background()

	req := dto.CreateDebtRequest{
		Name:         "Loan",
		Kind:         domain.PersonalLoan,
		CurrencyCode: "XXX",
		Balance:      decimal.NewFromInt(1000),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	debt, err := suite.service.CreateDebt(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

// --- GetDebtByID Tests ---

func (suite *DebtServiceTestSuite) TestGetDebtByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()
	expected := &domain.Debt{DebtID: debtID, UserID: userID, Name: "Car loan"}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(expected, nil).Once()

	debt, err := suite.service.GetDebtByID(ctx, userID, debtID)

	suite.Require().NoError(err)
	suite.Equal(expected, debt)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestGetDebtByID_OtherUsersDebtReadsAsNotFound() {
	ctx := context.Background()
	debtID := uuid.NewString()
	owner := uuid.NewString()
	intruder := uuid.NewString()

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(&domain.Debt{DebtID: debtID, UserID: owner}, nil).Once()

	debt, err := suite.service.GetDebtByID(ctx, intruder, debtID)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateDebt Tests ---

func (suite *DebtServiceTestSuite) TestUpdateDebt_MergesProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()
	existing := &domain.Debt{
		DebtID:  debtID,
		UserID:  userID,
		Name:    "Old name",
		Balance: decimal.NewFromInt(900000),
	}

	newName := "New name"
	newBalance := decimal.NewFromInt(750000)
	req := dto.UpdateDebtRequest{Name: &newName, Balance: &newBalance}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(existing, nil).Once()
	suite.mockDebtRepo.On("UpdateDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.Name == newName && d.Balance.Equal(newBalance) && d.LastUpdatedBy == userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, userID, debtID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.Balance.Equal(newBalance))
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_NegativeBalanceRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()
	existing := &domain.Debt{DebtID: debtID, UserID: userID}

	negative := decimal.NewFromInt(-1)
	req := dto.UpdateDebtRequest{Balance: &negative}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, userID, debtID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_NoFieldsIsNoOp() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()
	existing := &domain.Debt{DebtID: debtID, UserID: userID, Name: "Unchanged"}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, userID, debtID, dto.UpdateDebtRequest{})

	suite.Require().NoError(err)
	suite.Equal("Unchanged", updated.Name)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebt", mock.Anything, mock.Anything)
}

// --- DeactivateDebt Tests ---

func (suite *DebtServiceTestSuite) TestDeactivateDebt_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	debtID := uuid.NewString()
	existing := &domain.Debt{DebtID: debtID, UserID: userID, IsActive: true}

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(existing, nil).Once()
	suite.mockDebtRepo.On("DeactivateDebt", ctx, debtID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateDebt(ctx, userID, debtID)

	suite.Require().NoError(err)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestDeactivateDebt_NotFound() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockDebtRepo.On("FindDebtByID", ctx, debtID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateDebt(ctx, uuid.NewString(), debtID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "DeactivateDebt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
