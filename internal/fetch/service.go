// Package fetch runs one refresh cycle over the configured balance
// providers: pull accounts, match them onto the registry, write the
// readings back.
package fetch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
	"github.com/MrJamesThe3rd/networth/internal/metrics"
	"github.com/MrJamesThe3rd/networth/internal/provider"
	"github.com/MrJamesThe3rd/networth/internal/reconcile"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=fetch
type Source interface {
	Name() string
	Accounts(ctx context.Context) ([]provider.Account, error)
}

type Matcher interface {
	Match(ctx context.Context, providerName string, pa provider.Account) (*account.Account, error)
}

type Reconciler interface {
	Apply(ctx context.Context, acct *account.Account, r reconcile.Reading) (*balance.Reading, error)
}

// Unmatched records a provider account that no registered account
// claimed. It is surfaced so the user can register or relink the
// account; nothing is written for it.
type Unmatched struct {
	Provider          string `json:"provider"`
	ProviderAccountID string `json:"provider_account_id"`
	InstitutionLabel  string `json:"institution_label"`
	AccountName       string `json:"account_name"`
	Balance           int64  `json:"balance"`
}

// SourceError is a provider-level fetch failure. One failing provider
// does not abort the cycle; the others still run.
type SourceError struct {
	Provider string `json:"provider"`
	Err      string `json:"error"`
}

// BatchResult summarizes one refresh cycle.
type BatchResult struct {
	Fetched   []*balance.Reading `json:"fetched"`
	Unmatched []Unmatched        `json:"unmatched"`
	Errors    []SourceError      `json:"errors,omitempty"`
}

type Service struct {
	sources    []Source
	matcher    Matcher
	reconciler Reconciler
	logger     *slog.Logger
}

func NewService(sources []Source, matcher Matcher, reconciler Reconciler, logger *slog.Logger) *Service {
	return &Service{
		sources:    sources,
		matcher:    matcher,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Run executes one cycle across every source. Provider failures are
// collected into the result and the remaining sources still run; a
// registry or store failure aborts the cycle with an error, since
// continuing would report a half-written batch as success.
func (s *Service) Run(ctx context.Context) (*BatchResult, error) {
	result := &BatchResult{}

	for _, src := range s.sources {
		name := src.Name()

		accounts, err := src.Accounts(ctx)
		if err != nil {
			s.logger.Error("provider fetch failed", "provider", name, "error", err)
			metrics.ProviderErrors.WithLabelValues(name).Inc()
			result.Errors = append(result.Errors, SourceError{Provider: name, Err: err.Error()})

			continue
		}

		for _, pa := range accounts {
			acct, err := s.matcher.Match(ctx, name, pa)
			if err != nil {
				return nil, fmt.Errorf("matching %s account %s: %w", name, pa.ProviderAccountID, err)
			}

			if acct == nil {
				s.logger.Warn("no matching account",
					"provider", name,
					"provider_account_id", pa.ProviderAccountID,
					"institution", pa.InstitutionLabel)
				metrics.UnmatchedAccounts.WithLabelValues(name).Inc()
				result.Unmatched = append(result.Unmatched, Unmatched{
					Provider:          name,
					ProviderAccountID: pa.ProviderAccountID,
					InstitutionLabel:  pa.InstitutionLabel,
					AccountName:       pa.AccountName,
					Balance:           pa.Balance,
				})

				continue
			}

			reading, err := s.reconciler.Apply(ctx, acct, reconcile.Reading{
				ProviderAccountID: pa.ProviderAccountID,
				Source:            balance.Source(name),
				Amount:            pa.Balance,
				Date:              pa.AsOf,
			})
			if err != nil {
				return nil, fmt.Errorf("reconciling %s account %s: %w", name, pa.ProviderAccountID, err)
			}

			s.logger.Info("balance recorded",
				"provider", name,
				"account_id", acct.ID,
				"amount", reading.Amount)
			metrics.ReadingsWritten.WithLabelValues(name).Inc()
			result.Fetched = append(result.Fetched, reading)
		}
	}

	metrics.FetchCycles.Inc()

	return result, nil
}
