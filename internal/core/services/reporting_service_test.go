package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.ReportingSvcFacade
	cashAccount     domain.Account
	loanAccount     domain.Account
	equityAccount   domain.Account
	salesAccount    domain.Account
	fuelAccount     domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockVoucherRepo)

	suite.cashAccount = domain.Account{AccountID: uuid.NewString(), Code: "101", Name: "Cash", AccountType: domain.Asset}
	suite.loanAccount = domain.Account{AccountID: uuid.NewString(), Code: "211", Name: "Loans Payable", AccountType: domain.Liability}
	suite.equityAccount = domain.Account{AccountID: uuid.NewString(), Code: "301", Name: "Owner's Equity", AccountType: domain.Equity}
	suite.salesAccount = domain.Account{AccountID: uuid.NewString(), Code: "401", Name: "Sales", AccountType: domain.Revenue}
	suite.fuelAccount = domain.Account{AccountID: uuid.NewString(), Code: "521", Name: "Utilities Expense", AccountType: domain.Expense}
}

func (suite *ReportingServiceTestSuite) chart() []domain.Account {
	return []domain.Account{suite.cashAccount, suite.loanAccount, suite.equityAccount, suite.salesAccount, suite.fuelAccount}
}

func (suite *ReportingServiceTestSuite) saleAndExpenseVouchers() []domain.Voucher {
	return []domain.Voucher{
		{
			VoucherID: uuid.NewString(),
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Debits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(10000)},
			},
			Credits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.salesAccount.AccountID, Amount: decimal.NewFromInt(10000)},
			},
			Total: decimal.NewFromInt(10000),
		},
		{
			VoucherID: uuid.NewString(),
			Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Debits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.fuelAccount.AccountID, Amount: decimal.NewFromInt(3000)},
			},
			Credits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(3000)},
			},
			Total: decimal.NewFromInt(3000),
		},
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AggregatesPerAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return(suite.saleAndExpenseVouchers(), nil).Once()

	rows, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	// Rows follow the chart's code order; idle accounts are omitted.
	suite.Equal("101", rows[0].AccountCode)
	suite.True(rows[0].Debit.Equal(decimal.NewFromInt(10000)))
	suite.True(rows[0].Credit.Equal(decimal.NewFromInt(3000)))
	suite.True(rows[0].Balance.Equal(decimal.NewFromInt(7000)))

	suite.Equal("401", rows[1].AccountCode)
	suite.True(rows[1].Credit.Equal(decimal.NewFromInt(10000)))
	suite.True(rows[1].Balance.Equal(decimal.NewFromInt(10000)))

	suite.Equal("521", rows[2].AccountCode)
	suite.True(rows[2].Debit.Equal(decimal.NewFromInt(3000)))
	suite.True(rows[2].Balance.Equal(decimal.NewFromInt(3000)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsMatch() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return(suite.saleAndExpenseVouchers(), nil).Once()

	rows, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	suite.True(totalDebit.Equal(totalCredit), "grand debit and credit totals must agree")
	suite.True(totalDebit.Equal(decimal.NewFromInt(13000)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_EmptyHistory() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return([]domain.Voucher{}, nil).Once()

	rows, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportingServiceTestSuite) TestFinancialStatements_NetIncome() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return(suite.saleAndExpenseVouchers(), nil).Once()

	statements, err := suite.service.FinancialStatements(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(statements)

	suite.True(statements.ProfitAndLoss.TotalRevenue.Equal(decimal.NewFromInt(10000)))
	suite.True(statements.ProfitAndLoss.TotalExpenses.Equal(decimal.NewFromInt(3000)))
	suite.True(statements.NetIncome.Equal(decimal.NewFromInt(7000)))

	suite.True(statements.BalanceSheet.TotalAssets.Equal(decimal.NewFromInt(7000)))
	suite.True(statements.BalanceSheet.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(7000)),
		"net income must reconcile the balance sheet")
}

func (suite *ReportingServiceTestSuite) TestFinancialStatements_WithLiabilitiesAndEquity() {
	ctx := context.Background()
	vouchers := suite.saleAndExpenseVouchers()
	// Owner invests 50000 cash, and the business takes a 20000 loan.
	vouchers = append(vouchers,
		domain.Voucher{
			VoucherID: uuid.NewString(),
			Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Debits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(50000)},
			},
			Credits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.equityAccount.AccountID, Amount: decimal.NewFromInt(50000)},
			},
			Total: decimal.NewFromInt(50000),
		},
		domain.Voucher{
			VoucherID: uuid.NewString(),
			Date:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Debits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(20000)},
			},
			Credits: []domain.JournalEntry{
				{EntryID: uuid.NewString(), AccountID: suite.loanAccount.AccountID, Amount: decimal.NewFromInt(20000)},
			},
			Total: decimal.NewFromInt(20000),
		},
	)

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return(vouchers, nil).Once()

	statements, err := suite.service.FinancialStatements(ctx)

	suite.Require().NoError(err)
	suite.True(statements.BalanceSheet.TotalAssets.Equal(decimal.NewFromInt(77000)))
	suite.True(statements.BalanceSheet.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(77000)))
	suite.Require().Len(statements.BalanceSheet.Liabilities, 1)
	suite.Require().Len(statements.BalanceSheet.Equity, 1)
	suite.True(statements.BalanceSheet.Liabilities[0].NetAmount.Equal(decimal.NewFromInt(20000)))
	suite.True(statements.BalanceSheet.Equity[0].NetAmount.Equal(decimal.NewFromInt(50000)))
}

func (suite *ReportingServiceTestSuite) TestFinancialStatements_ReversalNetsToZero() {
	ctx := context.Background()
	vouchers := suite.saleAndExpenseVouchers()
	sale := vouchers[0]
	// Reverse the sale: sides swapped, same amounts.
	vouchers = append(vouchers, domain.Voucher{
		VoucherID: uuid.NewString(),
		Date:      time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Debits: []domain.JournalEntry{
			{EntryID: uuid.NewString(), AccountID: sale.Credits[0].AccountID, Amount: sale.Credits[0].Amount},
		},
		Credits: []domain.JournalEntry{
			{EntryID: uuid.NewString(), AccountID: sale.Debits[0].AccountID, Amount: sale.Debits[0].Amount},
		},
		Total: sale.Total,
	})

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockVoucherRepo.On("AllVouchers", ctx).Return(vouchers, nil).Once()

	statements, err := suite.service.FinancialStatements(ctx)

	suite.Require().NoError(err)
	// Only the expense remains after the sale and its reversal cancel out.
	suite.True(statements.ProfitAndLoss.TotalRevenue.IsZero())
	suite.True(statements.NetIncome.Equal(decimal.NewFromInt(-3000)))
	suite.True(statements.BalanceSheet.TotalAssets.Equal(decimal.NewFromInt(-3000)))
	suite.True(statements.BalanceSheet.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(-3000)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
