package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// LedgerLineResponse represents one row of an account's general ledger.
type LedgerLineResponse struct {
	VoucherID   string          `json:"voucherID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerResponse is the general ledger view for one account.
type LedgerResponse struct {
	Account AccountResponse      `json:"account"`
	Lines   []LedgerLineResponse `json:"lines"`
}

// ToLedgerResponse converts an account and its ledger lines to a DTO response.
func ToLedgerResponse(acc *domain.Account, lines []domain.LedgerLine) LedgerResponse {
	res := LedgerResponse{
		Account: ToAccountResponse(acc),
		Lines:   make([]LedgerLineResponse, len(lines)),
	}
	for i, l := range lines {
		res.Lines[i] = LedgerLineResponse{
			VoucherID:   l.VoucherID,
			Date:        l.Date,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Balance:     l.Balance,
		}
	}
	return res
}

// TrialBalanceRowResponse represents a row in the trial balance report response.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// AccountAmountResponse represents an account with its amount in a statement.
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// FinancialStatementsResponse bundles the profit-and-loss and balance-sheet
// statements derived from the current history.
type FinancialStatementsResponse struct {
	ProfitAndLoss struct {
		Revenue       []AccountAmountResponse `json:"revenue"`
		Expenses      []AccountAmountResponse `json:"expenses"`
		TotalRevenue  decimal.Decimal         `json:"totalRevenue"`
		TotalExpenses decimal.Decimal         `json:"totalExpenses"`
		NetIncome     decimal.Decimal         `json:"netIncome"`
	} `json:"profitAndLoss"`
	BalanceSheet struct {
		Assets                    []AccountAmountResponse `json:"assets"`
		Liabilities               []AccountAmountResponse `json:"liabilities"`
		Equity                    []AccountAmountResponse `json:"equity"`
		NetIncome                 decimal.Decimal         `json:"netIncome"`
		TotalAssets               decimal.Decimal         `json:"totalAssets"`
		TotalLiabilitiesAndEquity decimal.Decimal         `json:"totalLiabilitiesAndEquity"`
	} `json:"balanceSheet"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

func toAccountAmountResponses(items []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(items))
	for i, item := range items {
		res[i] = AccountAmountResponse{
			AccountID: item.AccountID,
			Code:      item.Code,
			Name:      item.Name,
			Amount:    item.NetAmount,
		}
	}
	return res
}

// ToFinancialStatementsResponse converts the domain statements to a DTO response.
func ToFinancialStatementsResponse(fs *domain.FinancialStatements) FinancialStatementsResponse {
	var response FinancialStatementsResponse

	response.ProfitAndLoss.Revenue = toAccountAmountResponses(fs.ProfitAndLoss.Revenue)
	response.ProfitAndLoss.Expenses = toAccountAmountResponses(fs.ProfitAndLoss.Expenses)
	response.ProfitAndLoss.TotalRevenue = fs.ProfitAndLoss.TotalRevenue
	response.ProfitAndLoss.TotalExpenses = fs.ProfitAndLoss.TotalExpenses
	response.ProfitAndLoss.NetIncome = fs.ProfitAndLoss.NetIncome

	response.BalanceSheet.Assets = toAccountAmountResponses(fs.BalanceSheet.Assets)
	response.BalanceSheet.Liabilities = toAccountAmountResponses(fs.BalanceSheet.Liabilities)
	response.BalanceSheet.Equity = toAccountAmountResponses(fs.BalanceSheet.Equity)
	response.BalanceSheet.NetIncome = fs.BalanceSheet.NetIncome
	response.BalanceSheet.TotalAssets = fs.BalanceSheet.TotalAssets
	response.BalanceSheet.TotalLiabilitiesAndEquity = fs.BalanceSheet.TotalLiabilitiesAndEquity

	response.NetIncome = fs.NetIncome
	return response
}
