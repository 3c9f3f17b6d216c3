package repositories

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its chart code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns the full chart, sorted ascending by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountAccounts returns the number of accounts in the chart.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// SaveAccount persists a new account and re-sorts the chart by code.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account by ID.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepository combines all chart-of-accounts repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
