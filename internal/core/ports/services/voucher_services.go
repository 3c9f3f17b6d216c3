package services

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	"github.com/smallbooks/smallbooks/internal/dto"
)

// VoucherSvcFacade defines the voucher-log operations exposed to handlers.
type VoucherSvcFacade interface {
	// CreateVoucher validates the double-entry invariant and appends a new
	// voucher. Fails with apperrors.ErrImbalanced when debit and credit
	// totals differ or are not positive, apperrors.ErrValidation on empty
	// sides or negative amounts, and apperrors.ErrNotFound when an entry
	// references an unknown account.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error)

	// ReverseVoucher appends a new voucher with the original's debit and
	// credit sides swapped, dated at reversal time. The original voucher is
	// untouched. Fails with apperrors.ErrNotFound for an unknown id.
	ReverseVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// GetVoucherByID retrieves a single voucher.
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers returns vouchers most-recent-first with token pagination.
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}
