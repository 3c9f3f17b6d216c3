package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type, for validation.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is one entry in the chart of accounts.
// The chart is kept sorted ascending by Code; Code is unique across the chart.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary key (UUID)
	Code        string      `json:"code"`      // Unique sortable code, string comparison
	Name        string      `json:"name"`      // Display name
	AccountType AccountType `json:"accountType"`
	IsStandard  bool        `json:"isStandard"` // Standard accounts cannot be removed
	CreatedAt   time.Time   `json:"createdAt"`
}
