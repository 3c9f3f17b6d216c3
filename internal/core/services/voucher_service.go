package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smallbooks/smallbooks/internal/apperrors"
	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/dto"
	"github.com/smallbooks/smallbooks/internal/utils/accounting"
)

// voucherService implements the VoucherSvcFacade interface.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	accountRepo portsrepo.AccountReader
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountReader) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher validates the double-entry invariant in full before any
// state change is committed, then appends the voucher to the history.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	if len(req.Debits) == 0 || len(req.Credits) == 0 {
		return nil, fmt.Errorf("%w: voucher requires at least one debit and one credit entry", apperrors.ErrValidation)
	}

	for _, e := range req.Debits {
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: entry amount must not be negative for account %s", apperrors.ErrValidation, e.AccountID)
		}
	}
	for _, e := range req.Credits {
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: entry amount must not be negative for account %s", apperrors.ErrValidation, e.AccountID)
		}
	}

	debits := toDomainEntries(req.Debits)
	credits := toDomainEntries(req.Credits)

	debitTotal := accounting.SumEntries(debits)
	creditTotal := accounting.SumEntries(credits)
	if !debitTotal.Equal(creditTotal) {
		return nil, fmt.Errorf("%w: debit total is %s and credit total is %s", apperrors.ErrImbalanced, debitTotal, creditTotal)
	}
	if !debitTotal.IsPositive() {
		return nil, fmt.Errorf("%w: voucher total must be greater than zero", apperrors.ErrImbalanced)
	}

	// Every referenced account must exist in the chart before commit.
	accountIDs := make([]string, 0, len(debits)+len(credits))
	for _, e := range debits {
		accountIDs = append(accountIDs, e.AccountID)
	}
	for _, e := range credits {
		accountIDs = append(accountIDs, e.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for voucher creation")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
	}

	voucher := domain.Voucher{
		VoucherID:   uuid.NewString(),
		Date:        req.Date,
		Description: req.Description,
		Debits:      debits,
		Credits:     credits,
		CreatedAt:   time.Now().UTC(),
		Total:       debitTotal,
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher")
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher created successfully",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("total", voucher.Total.String()),
		slog.Int("debit_entries", len(voucher.Debits)),
		slog.Int("credit_entries", len(voucher.Credits)))
	return &voucher, nil
}

// ReverseVoucher builds a new voucher with the original's sides swapped and
// submits it through the normal append path. The original is untouched.
func (s *voucherService) ReverseVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	original, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	req := dto.CreateVoucherRequest{
		Date:        time.Now().UTC(),
		Description: fmt.Sprintf("Reversal of: %s", original.Description),
		Debits:      toEntryRequests(original.Credits),
		Credits:     toEntryRequests(original.Debits),
	}

	reversal, err := s.CreateVoucher(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to append reversal voucher", slog.String("original_voucher_id", voucherID))
		return nil, fmt.Errorf("failed to append reversal: %w", err)
	}

	s.LogInfo(ctx, "Voucher reversed successfully",
		slog.String("original_voucher_id", voucherID),
		slog.String("reversal_voucher_id", reversal.VoucherID))
	return reversal, nil
}

// GetVoucherByID retrieves a single voucher.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// ListVouchers returns vouchers most-recent-first with token pagination.
func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}

	return &dto.ListVouchersResponse{
		Vouchers:  dto.ToVoucherResponses(vouchers),
		NextToken: nextToken,
	}, nil
}

// toDomainEntries converts request lines into journal entries with fresh ids.
func toDomainEntries(entries []dto.EntryRequest) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.JournalEntry{
			EntryID:     uuid.NewString(),
			AccountID:   e.AccountID,
			Amount:      e.Amount,
			Description: e.Description,
		}
	}
	return out
}

// toEntryRequests copies stored entries back into request lines, preserving
// amounts and per-line descriptions, for reversal submission.
func toEntryRequests(entries []domain.JournalEntry) []dto.EntryRequest {
	out := make([]dto.EntryRequest, len(entries))
	for i, e := range entries {
		out[i] = dto.EntryRequest{
			AccountID:   e.AccountID,
			Amount:      e.Amount,
			Description: e.Description,
		}
	}
	return out
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
