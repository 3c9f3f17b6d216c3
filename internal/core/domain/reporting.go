package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one row of an account's general ledger: a single matching
// journal entry with the running balance after applying it.
type LedgerLine struct {
	VoucherID   string          `json:"voucherID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"` // Entry description, or the voucher's when the entry has none
	Debit       decimal.Decimal `json:"debit"`       // Zero for credit lines
	Credit      decimal.Decimal `json:"credit"`      // Zero for debit lines
	Balance     decimal.Decimal `json:"balance"`     // Running balance after this line
}

// TrialBalanceRow represents a single account in a trial balance report.
// Accounts with zero debit and credit activity are omitted from the report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Net, signed per the account type's normal side
}

// AccountAmount represents an account with its net amount for financial statements.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss statement.
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport groups balance-sheet accounts into assets versus
// liabilities and equity. NetIncome is a reconciling line inside the
// liabilities-and-equity side, not added to any account's own balance, so
// that assets = liabilities + equity + net income holds without a formal
// period close.
type BalanceSheetReport struct {
	Assets                    []AccountAmount `json:"assets"`
	Liabilities               []AccountAmount `json:"liabilities"`
	Equity                    []AccountAmount `json:"equity"`
	NetIncome                 decimal.Decimal `json:"netIncome"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"` // Liabilities + equity + net income
}

// FinancialStatements bundles the two statements derived from one
// trial-balance pass.
type FinancialStatements struct {
	ProfitAndLoss PAndLReport        `json:"profitAndLoss"`
	BalanceSheet  BalanceSheetReport `json:"balanceSheet"`
	NetIncome     decimal.Decimal    `json:"netIncome"`
}
