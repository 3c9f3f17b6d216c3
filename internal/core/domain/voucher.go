package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal entry sits on the debit or credit
// side of its voucher.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalEntry is a single line on one side of a voucher, affecting one account.
// Amount is a non-negative count of the smallest currency unit.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`   // Primary key (UUID)
	AccountID   string          `json:"accountID"` // FK -> Account.AccountID
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"` // Free text; falls back to the voucher description in ledger views
}

// Voucher is a balanced, immutable transaction record. Debits and Credits
// are each non-empty and their amount totals are equal and strictly
// positive; this is enforced at creation and never relaxed. Cancelling a
// voucher means appending a reversal, never editing or deleting.
type Voucher struct {
	VoucherID   string          `json:"voucherID"` // Primary key (UUID)
	Date        time.Time       `json:"date"`      // Calendar date the event occurred
	Description string          `json:"description"`
	Debits      []JournalEntry  `json:"debits"`
	Credits     []JournalEntry  `json:"credits"`
	CreatedAt   time.Time       `json:"createdAt"`
	Total       decimal.Decimal `json:"total"` // The shared debit/credit total
}

// EntriesFor returns the voucher's entries touching accountID, debit side
// first, preserving entry order within each side.
func (v Voucher) EntriesFor(accountID string) (debits, credits []JournalEntry) {
	for _, e := range v.Debits {
		if e.AccountID == accountID {
			debits = append(debits, e)
		}
	}
	for _, e := range v.Credits {
		if e.AccountID == accountID {
			credits = append(credits, e)
		}
	}
	return debits, credits
}

// References reports whether any entry on either side touches accountID.
func (v Voucher) References(accountID string) bool {
	d, c := v.EntriesFor(accountID)
	return len(d) > 0 || len(c) > 0
}
