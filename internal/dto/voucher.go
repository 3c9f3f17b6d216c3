package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// EntryRequest defines one journal entry line in a voucher submission.
type EntryRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateVoucherRequest defines the data needed to append a voucher.
type CreateVoucherRequest struct {
	Date        time.Time      `json:"date" binding:"required"`
	Description string         `json:"description"`
	Debits      []EntryRequest `json:"debits" binding:"required,min=1,dive"`
	Credits     []EntryRequest `json:"credits" binding:"required,min=1,dive"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID   string          `json:"voucherID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debits      []EntryResponse `json:"debits"`
	Credits     []EntryResponse `json:"credits"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListVouchersResponse wraps a page of vouchers with the continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func toEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = EntryResponse{
			EntryID:     e.EntryID,
			AccountID:   e.AccountID,
			Amount:      e.Amount,
			Description: e.Description,
		}
	}
	return res
}

// ToVoucherResponse converts a domain.Voucher to a VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:   v.VoucherID,
		Date:        v.Date,
		Description: v.Description,
		Debits:      toEntryResponses(v.Debits),
		Credits:     toEntryResponses(v.Credits),
		Total:       v.Total,
		CreatedAt:   v.CreatedAt,
	}
}

// ToVoucherResponses converts a slice of domain.Voucher to response DTOs.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		res[i] = ToVoucherResponse(&v)
	}
	return res
}
