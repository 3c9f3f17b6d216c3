// Package memory provides the in-process repository adapters. The store is
// single-writer: one logical session owns it, mutations are validated in
// full before commit, and readers always see a complete snapshot.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/smallbooks/smallbooks/internal/apperrors"
	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
)

// AccountRepository is a mutex-guarded in-memory chart of accounts.
// The chart slice is kept sorted ascending by code at all times.
type AccountRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.Account
	byCode map[string]string // code -> accountID
	sorted []domain.Account
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:   make(map[string]domain.Account),
		byCode: make(map[string]string),
	}
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// SaveAccount inserts a new account and re-sorts the chart by code.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[account.Code]; exists {
		return fmt.Errorf("account code %s: %w", account.Code, apperrors.ErrDuplicate)
	}
	if _, exists := r.byID[account.AccountID]; exists {
		return fmt.Errorf("account id %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}

	r.byID[account.AccountID] = account
	r.byCode[account.Code] = account.AccountID
	r.sorted = append(r.sorted, account)
	sort.SliceStable(r.sorted, func(i, j int) bool {
		return r.sorted[i].Code < r.sorted[j].Code
	})
	return nil
}

// DeleteAccount removes an account by ID.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	delete(r.byID, accountID)
	delete(r.byCode, account.Code)
	for i := range r.sorted {
		if r.sorted[i].AccountID == accountID {
			r.sorted = append(r.sorted[:i], r.sorted[i+1:]...)
			break
		}
	}
	return nil
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return &account, nil
}

// FindAccountByCode retrieves an account by its chart code.
func (r *AccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accountID, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("account code %s: %w", code, apperrors.ErrNotFound)
	}
	account := r.byID[accountID]
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs. Unknown IDs
// are simply absent from the result map.
func (r *AccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := r.byID[id]; ok {
			result[id] = account
		}
	}
	return result, nil
}

// ListAccounts returns a copy of the chart, sorted ascending by code.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.sorted))
	copy(out, r.sorted)
	return out, nil
}

// CountAccounts returns the number of accounts in the chart.
func (r *AccountRepository) CountAccounts(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
