package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/utils/accounting"
)

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	voucherRepo portsrepo.VoucherReader
}

// NewLedgerService creates a new general-ledger projection service.
func NewLedgerService(accountRepo portsrepo.AccountReader, voucherRepo portsrepo.VoucherReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// LedgerForAccount projects the full history into the account's ledger.
//
// The voucher log is stored most-recent-first for display; the projection
// must not rely on that, so it stable-sorts a snapshot ascending by date.
// Stability keeps same-date vouchers in their original relative order,
// which makes the running balances deterministic.
func (s *ledgerService) LedgerForAccount(ctx context.Context, accountID string) ([]domain.LedgerLine, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.AllVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voucher history: %w", err)
	}

	sort.SliceStable(vouchers, func(i, j int) bool {
		return vouchers[i].Date.Before(vouchers[j].Date)
	})

	lines := make([]domain.LedgerLine, 0)
	balance := decimal.Zero
	for _, voucher := range vouchers {
		debits, credits := voucher.EntriesFor(accountID)
		for _, entry := range debits {
			signed, err := accounting.SignedAmount(entry.Amount, domain.Debit, account.AccountType)
			if err != nil {
				return nil, fmt.Errorf("projecting voucher %s: %w", voucher.VoucherID, err)
			}
			balance = balance.Add(signed)
			lines = append(lines, domain.LedgerLine{
				VoucherID:   voucher.VoucherID,
				Date:        voucher.Date,
				Description: effectiveDescription(entry, voucher),
				Debit:       entry.Amount,
				Credit:      decimal.Zero,
				Balance:     balance,
			})
		}
		for _, entry := range credits {
			signed, err := accounting.SignedAmount(entry.Amount, domain.Credit, account.AccountType)
			if err != nil {
				return nil, fmt.Errorf("projecting voucher %s: %w", voucher.VoucherID, err)
			}
			balance = balance.Add(signed)
			lines = append(lines, domain.LedgerLine{
				VoucherID:   voucher.VoucherID,
				Date:        voucher.Date,
				Description: effectiveDescription(entry, voucher),
				Debit:       decimal.Zero,
				Credit:      entry.Amount,
				Balance:     balance,
			})
		}
	}
	return lines, nil
}

// effectiveDescription prefers the entry-level description, falling back to
// the voucher's overall description when the line has none.
func effectiveDescription(entry domain.JournalEntry, voucher domain.Voucher) string {
	if entry.Description != "" {
		return entry.Description
	}
	return voucher.Description
}
