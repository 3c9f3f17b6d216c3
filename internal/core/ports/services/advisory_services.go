package services

import (
	"context"

	"github.com/smallbooks/smallbooks/internal/core/domain"
)

// SuggestionProvider is the external collaborator that proposes an account
// for a journal entry line. Advisory only: results are never authoritative
// and a failure must never block voucher entry.
type SuggestionProvider interface {
	// SuggestAccount returns at most one account name picked from candidates
	// for the given line description and side. An empty string means no
	// suggestion.
	SuggestAccount(ctx context.Context, description string, side domain.EntrySide, candidates []string) (string, error)
}

// AdviceProvider is the external collaborator that turns a trial-balance
// snapshot into free-form narrative text for display. It has no effect on
// stored state.
type AdviceProvider interface {
	Advise(ctx context.Context, rows []domain.TrialBalanceRow) (string, error)
}

// AdvisorySvcFacade wraps the external providers with soft-failure
// semantics: provider errors, timeouts, and unmatched suggestions all
// degrade to "nothing available" instead of an error.
type AdvisorySvcFacade interface {
	// SuggestAccount resolves a provider suggestion against the chart.
	// ok is false when no usable suggestion is available.
	SuggestAccount(ctx context.Context, description string, side domain.EntrySide) (account *domain.Account, ok bool)

	// Advice produces narrative advice for the current books. ok is false
	// when no advice is available.
	Advice(ctx context.Context) (text string, ok bool)
}
