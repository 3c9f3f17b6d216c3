package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// SignedAmount applies the double-entry sign convention to an entry amount.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func SignedAmount(amount decimal.Decimal, side domain.EntrySide, accountType domain.AccountType) (decimal.Decimal, error) {
	isDebit := side == domain.Debit
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			amount = amount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			amount = amount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
	}
	return amount, nil
}

// SumEntries totals the amounts of one side of a voucher.
func SumEntries(entries []domain.JournalEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// NetBalance folds debit and credit totals into a net balance using the
// account type's normal side: debit-minus-credit for ASSET/EXPENSE,
// credit-minus-debit otherwise.
func NetBalance(debit, credit decimal.Decimal, accountType domain.AccountType) decimal.Decimal {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit)
	default:
		return credit.Sub(debit)
	}
}
