package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smallbooks/smallbooks/internal/apperrors"
	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/dto"
)

// standardChart is the seed set for a fresh small-business chart. Seeded
// accounts carry the standard flag and cannot be removed.
var standardChart = []struct {
	Code string
	Name string
	Type domain.AccountType
}{
	{"101", "Cash", domain.Asset},
	{"111", "Accounts Receivable", domain.Asset},
	{"141", "Equipment", domain.Asset},
	{"201", "Accounts Payable", domain.Liability},
	{"211", "Loans Payable", domain.Liability},
	{"301", "Owner's Equity", domain.Equity},
	{"401", "Sales", domain.Revenue},
	{"501", "Purchases", domain.Expense},
	{"511", "Rent Expense", domain.Expense},
	{"521", "Utilities Expense", domain.Expense},
}

// chartService implements the ChartSvcFacade interface.
type chartService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	voucherRepo portsrepo.VoucherReader
}

// NewChartService creates a new chart-of-accounts service. The voucher
// reader is consulted before deletions so that no account referenced by
// posted vouchers can be removed.
func NewChartService(accountRepo portsrepo.AccountRepository, voucherRepo portsrepo.VoucherReader) portssvc.ChartSvcFacade {
	return &chartService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// CreateAccount validates and inserts a new account.
func (s *chartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: account code and name must not be empty", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	if _, err := s.accountRepo.FindAccountByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("account code %s: %w", code, apperrors.ErrDuplicate)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        name,
		AccountType: req.AccountType,
		IsStandard:  false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

// DeleteAccount removes a non-standard, unreferenced account.
func (s *chartService) DeleteAccount(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsStandard {
		return fmt.Errorf("standard account %s: %w", account.Code, apperrors.ErrProtected)
	}

	referenced, err := s.voucherRepo.HasEntriesForAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check voucher references", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check voucher references: %w", err)
	}
	if referenced {
		return fmt.Errorf("account %s has posted voucher entries: %w", account.Code, apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("code", account.Code))
	return nil
}

// GetAccountByID retrieves a single account.
func (s *chartService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts returns the chart sorted ascending by code.
func (s *chartService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// SeedStandardChart inserts the standard account set when the chart is empty.
func (s *chartService) SeedStandardChart(ctx context.Context) error {
	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		s.LogDebug(ctx, "Chart already populated, skipping seed", slog.Int("accounts", count))
		return nil
	}

	now := time.Now().UTC()
	for _, entry := range standardChart {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			Code:        entry.Code,
			Name:        entry.Name,
			AccountType: entry.Type,
			IsStandard:  true,
			CreatedAt:   now,
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", entry.Code, err)
		}
	}

	s.LogInfo(ctx, "Standard chart seeded", slog.Int("accounts", len(standardChart)))
	return nil
}
