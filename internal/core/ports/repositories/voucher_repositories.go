package repositories

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// VoucherReader defines read operations over the voucher log.
type VoucherReader interface {
	// FindVoucherByID retrieves a specific voucher.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers returns a page of vouchers most-recent-first (creation
	// time). This order is for display only; derivations must re-sort a
	// full snapshot by date instead.
	ListVouchers(ctx context.Context, limit int, nextToken *string) ([]domain.Voucher, *string, error)

	// AllVouchers returns a snapshot of the entire history, in storage order.
	AllVouchers(ctx context.Context) ([]domain.Voucher, error)

	// HasEntriesForAccount reports whether any stored voucher references the account.
	HasEntriesForAccount(ctx context.Context, accountID string) (bool, error)
}

// VoucherWriter defines write operations on the voucher log. The log is
// append-only: vouchers are never updated or deleted.
type VoucherWriter interface {
	// SaveVoucher appends a validated voucher to the history.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
}

// VoucherRepository combines all voucher repository operations.
type VoucherRepository interface {
	VoucherReader
	VoucherWriter
}
