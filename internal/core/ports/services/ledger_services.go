package services

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// LedgerSvcFacade derives the general ledger view for one account.
type LedgerSvcFacade interface {
	// LedgerForAccount projects the full voucher history into the account's
	// chronological entry lines with running balances. A pure function of
	// the current (accounts, vouchers) snapshot; deterministic across
	// repeated calls on an unchanged history. Fails with
	// apperrors.ErrNotFound for an unknown account.
	LedgerForAccount(ctx context.Context, accountID string) ([]domain.LedgerLine, error)
}
