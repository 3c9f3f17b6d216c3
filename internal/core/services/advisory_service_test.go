package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/core/services"
)

// --- Mock ReportingSvcFacade ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingService) FinancialStatements(ctx context.Context) (*domain.FinancialStatements, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialStatements), args.Error(1)
}

type AdvisoryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockReporting   *MockReportingService
	mockSuggester   *MockSuggestionProvider
	mockAdviser     *MockAdviceProvider
	service         portssvc.AdvisorySvcFacade
	cashAccount     domain.Account
	fuelAccount     domain.Account
}

func (suite *AdvisoryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReporting = new(MockReportingService)
	suite.mockSuggester = new(MockSuggestionProvider)
	suite.mockAdviser = new(MockAdviceProvider)
	suite.service = services.NewAdvisoryService(
		suite.mockAccountRepo,
		suite.mockReporting,
		suite.mockSuggester,
		suite.mockAdviser,
		time.Second,
	)

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "101",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.fuelAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "521",
		Name:        "Utilities Expense",
		AccountType: domain.Expense,
	}
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_MatchesChart() {
	ctx := context.Background()
	chart := []domain.Account{suite.cashAccount, suite.fuelAccount}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()
	suite.mockSuggester.On("SuggestAccount", mock.Anything, "Electricity bill", domain.Debit, []string{"Cash", "Utilities Expense"}).
		Return("Utilities Expense", nil).Once()

	account, ok := suite.service.SuggestAccount(ctx, "Electricity bill", domain.Debit)

	suite.Require().True(ok)
	suite.Require().NotNil(account)
	suite.Equal(suite.fuelAccount.AccountID, account.AccountID)
	suite.mockSuggester.AssertExpectations(suite.T())
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_CaseInsensitiveMatch() {
	ctx := context.Background()
	chart := []domain.Account{suite.cashAccount, suite.fuelAccount}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()
	suite.mockSuggester.On("SuggestAccount", mock.Anything, mock.Anything, domain.Credit, mock.Anything).
		Return("utilities expense", nil).Once()

	account, ok := suite.service.SuggestAccount(ctx, "power", domain.Credit)

	suite.Require().True(ok)
	suite.Equal(suite.fuelAccount.AccountID, account.AccountID)
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_UnmatchedSuggestion() {
	ctx := context.Background()
	chart := []domain.Account{suite.cashAccount}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()
	suite.mockSuggester.On("SuggestAccount", mock.Anything, mock.Anything, domain.Debit, mock.Anything).
		Return("Imaginary Account", nil).Once()

	account, ok := suite.service.SuggestAccount(ctx, "mystery", domain.Debit)

	suite.False(ok)
	suite.Nil(account)
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_ProviderFailureDegrades() {
	ctx := context.Background()
	chart := []domain.Account{suite.cashAccount}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()
	suite.mockSuggester.On("SuggestAccount", mock.Anything, mock.Anything, domain.Debit, mock.Anything).
		Return("", errors.New("provider unreachable")).Once()

	account, ok := suite.service.SuggestAccount(ctx, "anything", domain.Debit)

	suite.False(ok)
	suite.Nil(account)
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_EmptySuggestion() {
	ctx := context.Background()
	chart := []domain.Account{suite.cashAccount}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()
	suite.mockSuggester.On("SuggestAccount", mock.Anything, mock.Anything, domain.Debit, mock.Anything).
		Return("  ", nil).Once()

	account, ok := suite.service.SuggestAccount(ctx, "anything", domain.Debit)

	suite.False(ok)
	suite.Nil(account)
}

func (suite *AdvisoryServiceTestSuite) TestSuggestAccount_NilProvider() {
	service := services.NewAdvisoryService(suite.mockAccountRepo, suite.mockReporting, nil, nil, time.Second)

	account, ok := service.SuggestAccount(context.Background(), "anything", domain.Debit)

	suite.False(ok)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *AdvisoryServiceTestSuite) TestAdvice_Success() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{AccountCode: "101", AccountName: "Cash", AccountType: domain.Asset, Balance: decimal.NewFromInt(7000)},
	}

	suite.mockReporting.On("TrialBalance", ctx).Return(rows, nil).Once()
	suite.mockAdviser.On("Advise", mock.Anything, rows).Return("Cash position looks healthy.", nil).Once()

	text, ok := suite.service.Advice(ctx)

	suite.Require().True(ok)
	suite.Equal("Cash position looks healthy.", text)
	suite.mockAdviser.AssertExpectations(suite.T())
}

func (suite *AdvisoryServiceTestSuite) TestAdvice_ProviderFailureDegrades() {
	ctx := context.Background()

	suite.mockReporting.On("TrialBalance", ctx).Return([]domain.TrialBalanceRow{}, nil).Once()
	suite.mockAdviser.On("Advise", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()

	text, ok := suite.service.Advice(ctx)

	suite.False(ok)
	suite.Empty(text)
}

func (suite *AdvisoryServiceTestSuite) TestAdvice_NilProvider() {
	service := services.NewAdvisoryService(suite.mockAccountRepo, suite.mockReporting, nil, nil, time.Second)

	text, ok := service.Advice(context.Background())

	suite.False(ok)
	suite.Empty(text)
	suite.mockReporting.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything)
}

func TestAdvisoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceTestSuite))
}
