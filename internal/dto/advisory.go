package dto

import "github.com/smallbooks/smallbooks/internal/core/domain"

// SuggestAccountRequest asks the assistant for an account matching a line
// description on one side of a voucher.
type SuggestAccountRequest struct {
	Description string           `json:"description" binding:"required"`
	Side        domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
}

// SuggestAccountResponse carries at most one suggested account. Suggestion
// is null when no suggestion is available; that is not an error.
type SuggestAccountResponse struct {
	Suggestion *AccountResponse `json:"suggestion"`
}

// AdviceResponse carries free-form narrative advice. Advice is empty and
// Available false when the provider had nothing to offer.
type AdviceResponse struct {
	Available bool   `json:"available"`
	Advice    string `json:"advice"`
}
