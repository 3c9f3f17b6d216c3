package services

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	"github.com/smallbooks/smallbooks/internal/dto"
)

// ChartSvcFacade defines the chart-of-accounts operations exposed to handlers.
type ChartSvcFacade interface {
	// CreateAccount validates and inserts a new account, keeping the chart
	// sorted ascending by code. Fails with apperrors.ErrDuplicate when the
	// code is taken and apperrors.ErrValidation on empty code/name or an
	// unknown account type.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes a non-standard account. Fails with
	// apperrors.ErrProtected for standard accounts and apperrors.ErrConflict
	// when posted vouchers still reference the account.
	DeleteAccount(ctx context.Context, accountID string) error

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns the chart sorted ascending by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SeedStandardChart inserts the standard account set when the chart is
	// empty. Safe to call on every startup.
	SeedStandardChart(ctx context.Context) error
}
