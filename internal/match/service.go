package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/provider"
)

//go:generate mockgen -source=service.go -destination=registry_mock.go -package=match
type Registry interface {
	ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, error)
}

// Service resolves provider-reported accounts onto the internal registry.
type Service struct {
	registry Registry
}

func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// Match returns the internal account a provider account belongs to, or
// nil when no account matches. Unmatched is a normal outcome, not an
// error; an error here means the registry itself is unavailable.
//
// Priority, first match wins:
//  1. Exact external-id match. Authoritative and idempotent once linkage
//     exists.
//  2. Institution-fuzzy match against active, unlinked accounts whose
//     ingestion method equals the provider. Both institution strings are
//     lower-cased, stripped of non-alphanumerics, and compared by
//     substring in either direction. The first candidate in registry
//     order claims the linkage — if two unlinked accounts share an
//     institution the choice is arbitrary, so link order matters there.
func (s *Service) Match(ctx context.Context, providerName string, pa provider.Account) (*account.Account, error) {
	accounts, err := s.registry.ListAccounts(ctx, account.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing accounts for matching: %w", err)
	}

	for _, a := range accounts {
		if a.ExternalID != "" && a.ExternalID == pa.ProviderAccountID {
			return a, nil
		}
	}

	wantLabel := normalizeInstitution(pa.InstitutionLabel)
	if wantLabel == "" {
		return nil, nil
	}

	for _, a := range accounts {
		if !a.IsActive || a.ExternalID != "" {
			continue
		}

		if string(a.IngestionMethod) != providerName {
			continue
		}

		have := normalizeInstitution(a.Institution)
		if have == "" {
			continue
		}

		if strings.Contains(have, wantLabel) || strings.Contains(wantLabel, have) {
			return a, nil
		}
	}

	return nil, nil
}

// normalizeInstitution lower-cases and drops everything outside [a-z0-9],
// so "Wells Fargo" and "wellsfargo.com" compare equal.
func normalizeInstitution(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
