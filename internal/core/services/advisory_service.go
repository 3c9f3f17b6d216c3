package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
)

const defaultProviderTimeout = 10 * time.Second

// advisoryService wraps the external suggestion/advice providers with
// soft-failure semantics. Nothing in this service touches stored state, and
// no failure here is ever surfaced as a ledger error: a provider problem
// degrades to "no suggestion" / "no advice".
type advisoryService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	reporting   portssvc.ReportingSvcFacade
	suggester   portssvc.SuggestionProvider
	adviser     portssvc.AdviceProvider
	timeout     time.Duration
}

// NewAdvisoryService creates a new advisory service. Either provider may be
// nil, in which case the corresponding operation always reports nothing
// available. providerTimeout bounds each provider invocation independently;
// zero selects the default.
func NewAdvisoryService(
	accountRepo portsrepo.AccountReader,
	reporting portssvc.ReportingSvcFacade,
	suggester portssvc.SuggestionProvider,
	adviser portssvc.AdviceProvider,
	providerTimeout time.Duration,
) portssvc.AdvisorySvcFacade {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	return &advisoryService{
		accountRepo: accountRepo,
		reporting:   reporting,
		suggester:   suggester,
		adviser:     adviser,
		timeout:     providerTimeout,
	}
}

var _ portssvc.AdvisorySvcFacade = (*advisoryService)(nil)

// SuggestAccount asks the provider for a candidate account name and resolves
// it against the chart. Advisory only: a miss is not an error.
func (s *advisoryService) SuggestAccount(ctx context.Context, description string, side domain.EntrySide) (*domain.Account, bool) {
	if s.suggester == nil {
		return nil, false
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogWarn(ctx, "Chart unavailable for suggestion, degrading to none", slog.String("error", err.Error()))
		return nil, false
	}
	candidates := make([]string, len(accounts))
	for i, acc := range accounts {
		candidates[i] = acc.Name
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name, err := s.suggester.SuggestAccount(callCtx, description, side, candidates)
	if err != nil {
		s.LogWarn(ctx, "Suggestion provider failed, degrading to none", slog.String("error", err.Error()))
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	for i := range accounts {
		if strings.EqualFold(accounts[i].Name, name) {
			s.LogDebug(ctx, "Suggestion matched chart account",
				slog.String("account_id", accounts[i].AccountID),
				slog.String("name", accounts[i].Name))
			return &accounts[i], true
		}
	}

	s.LogDebug(ctx, "Suggestion did not match any chart account", slog.String("suggested_name", name))
	return nil, false
}

// Advice hands the current trial balance to the provider and returns its
// narrative text, or nothing when the provider is absent or fails.
func (s *advisoryService) Advice(ctx context.Context) (string, bool) {
	if s.adviser == nil {
		return "", false
	}

	rows, err := s.reporting.TrialBalance(ctx)
	if err != nil {
		s.LogWarn(ctx, "Trial balance unavailable for advice, degrading to none", slog.String("error", err.Error()))
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.adviser.Advise(callCtx, rows)
	if err != nil {
		s.LogWarn(ctx, "Advice provider failed, degrading to none", slog.String("error", err.Error()))
		return "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}
