package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/utils/accounting"
)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	voucherRepo portsrepo.VoucherReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, voucherRepo portsrepo.VoucherReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance aggregates debit and credit totals for every account across
// the entire history. Rows follow the chart's code order; accounts with no
// activity on either side are omitted.
func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	vouchers, err := s.voucherRepo.AllVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voucher history: %w", err)
	}

	type totals struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	byAccount := make(map[string]totals, len(accounts))
	for _, v := range vouchers {
		for _, e := range v.Debits {
			t := byAccount[e.AccountID]
			t.debit = t.debit.Add(e.Amount)
			byAccount[e.AccountID] = t
		}
		for _, e := range v.Credits {
			t := byAccount[e.AccountID]
			t.credit = t.credit.Add(e.Amount)
			byAccount[e.AccountID] = t
		}
	}

	rows := make([]domain.TrialBalanceRow, 0, len(byAccount))
	for _, account := range accounts {
		t, ok := byAccount[account.AccountID]
		if !ok || (t.debit.IsZero() && t.credit.IsZero()) {
			continue
		}
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   account.AccountID,
			AccountCode: account.Code,
			AccountName: account.Name,
			AccountType: account.AccountType,
			Debit:       t.debit,
			Credit:      t.credit,
			Balance:     accounting.NetBalance(t.debit, t.credit, account.AccountType),
		})
	}

	s.LogDebug(ctx, "Trial balance computed", slog.Int("row_count", len(rows)))
	return rows, nil
}

// FinancialStatements partitions the trial balance into profit-and-loss and
// balance-sheet groups. Net income is computed from the P&L side and also
// surfaced as a reconciling line in the liabilities-and-equity group, so
// assets = liabilities + equity + net income stays visibly balanced without
// a period close.
func (s *reportingService) FinancialStatements(ctx context.Context) (*domain.FinancialStatements, error) {
	rows, err := s.TrialBalance(ctx)
	if err != nil {
		return nil, err
	}

	var pl domain.PAndLReport
	var bs domain.BalanceSheetReport
	pl.TotalRevenue = decimal.Zero
	pl.TotalExpenses = decimal.Zero
	bs.TotalAssets = decimal.Zero
	totalLiabilities := decimal.Zero
	totalEquity := decimal.Zero

	for _, row := range rows {
		item := domain.AccountAmount{
			AccountID: row.AccountID,
			Code:      row.AccountCode,
			Name:      row.AccountName,
			NetAmount: row.Balance,
		}
		switch row.AccountType {
		case domain.Revenue:
			pl.Revenue = append(pl.Revenue, item)
			pl.TotalRevenue = pl.TotalRevenue.Add(row.Balance)
		case domain.Expense:
			pl.Expenses = append(pl.Expenses, item)
			pl.TotalExpenses = pl.TotalExpenses.Add(row.Balance)
		case domain.Asset:
			bs.Assets = append(bs.Assets, item)
			bs.TotalAssets = bs.TotalAssets.Add(row.Balance)
		case domain.Liability:
			bs.Liabilities = append(bs.Liabilities, item)
			totalLiabilities = totalLiabilities.Add(row.Balance)
		case domain.Equity:
			bs.Equity = append(bs.Equity, item)
			totalEquity = totalEquity.Add(row.Balance)
		}
	}

	netIncome := pl.TotalRevenue.Sub(pl.TotalExpenses)
	pl.NetIncome = netIncome
	bs.NetIncome = netIncome
	bs.TotalLiabilitiesAndEquity = totalLiabilities.Add(totalEquity).Add(netIncome)

	s.LogDebug(ctx, "Financial statements composed",
		slog.String("net_income", netIncome.String()),
		slog.Int("pl_accounts", len(pl.Revenue)+len(pl.Expenses)),
		slog.Int("bs_accounts", len(bs.Assets)+len(bs.Liabilities)+len(bs.Equity)))

	return &domain.FinancialStatements{
		ProfitAndLoss: pl,
		BalanceSheet:  bs,
		NetIncome:     netIncome,
	}, nil
}
