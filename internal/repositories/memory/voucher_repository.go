package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/smallbooks/smallbooks/internal/apperrors"
	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	"github.com/smallbooks/smallbooks/internal/utils/pagination"
)

// VoucherRepository is a mutex-guarded, append-only in-memory voucher log.
// Vouchers are held in append order; listings serve them most-recent-first.
// That order is presentational only — derivations take AllVouchers and
// re-sort by date themselves.
type VoucherRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Voucher
	log  []domain.Voucher // append order == creation order
}

// NewVoucherRepository creates an empty in-memory voucher repository.
func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{
		byID: make(map[string]domain.Voucher),
	}
}

var _ portsrepo.VoucherRepository = (*VoucherRepository)(nil)

// SaveVoucher appends a validated voucher to the history.
func (r *VoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[voucher.VoucherID]; exists {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrDuplicate)
	}
	r.byID[voucher.VoucherID] = voucher
	r.log = append(r.log, voucher)
	return nil
}

// FindVoucherByID retrieves a specific voucher.
func (r *VoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucher, ok := r.byID[voucherID]
	if !ok {
		return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	return &voucher, nil
}

// ListVouchers returns a page of vouchers most-recent-first with an opaque
// continuation token.
func (r *VoucherRepository) ListVouchers(ctx context.Context, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	// Walk the log backwards: the append order is the creation order.
	start := len(r.log) - 1
	if nextToken != nil && *nextToken != "" {
		_, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		for i := len(r.log) - 1; i >= 0; i-- {
			if r.log[i].VoucherID == afterID {
				start = i - 1
				break
			}
		}
	}

	page := make([]domain.Voucher, 0, limit)
	for i := start; i >= 0 && len(page) < limit; i-- {
		page = append(page, r.log[i])
	}

	var token *string
	if len(page) == limit && start-limit >= 0 {
		last := page[len(page)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.VoucherID)
		token = &t
	}
	return page, token, nil
}

// AllVouchers returns a snapshot of the entire history in storage order.
func (r *VoucherRepository) AllVouchers(ctx context.Context) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Voucher, len(r.log))
	copy(out, r.log)
	return out, nil
}

// HasEntriesForAccount reports whether any stored voucher references the account.
func (r *VoucherRepository) HasEntriesForAccount(ctx context.Context, accountID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.log {
		if v.References(accountID) {
			return true, nil
		}
	}
	return false, nil
}
