package services

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// ReportingSvcFacade derives the aggregate reports from the voucher history.
// Both derivations recompute fully from the current snapshot on every call.
type ReportingSvcFacade interface {
	// TrialBalance returns per-account debit/credit totals and net balances,
	// sorted ascending by account code. Accounts with zero activity on both
	// sides are omitted.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)

	// FinancialStatements partitions the trial balance into profit-and-loss
	// and balance-sheet groups and computes net income.
	FinancialStatements(ctx context.Context) (*domain.FinancialStatements, error)
}
