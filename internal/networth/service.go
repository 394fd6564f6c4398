package networth

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=networth
type Registry interface {
	ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, error)
}

type Projection interface {
	LatestPerAccount(ctx context.Context) (map[string]*balance.Reading, error)
}

// Service assembles summaries from the registry and the latest-balance
// projection. The folding itself is the pure Summarize/Stale functions.
type Service struct {
	registry   Registry
	projection Projection
}

func NewService(registry Registry, projection Projection) *Service {
	return &Service{registry: registry, projection: projection}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	accounts, latest, err := s.load(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(accounts, latest), nil
}

// AccountBalance returns the latest recorded balance for one account,
// 0 when none exists.
func (s *Service) AccountBalance(ctx context.Context, id string) (int64, error) {
	latest, err := s.projection.LatestPerAccount(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading latest balances: %w", err)
	}

	if r, ok := latest[id]; ok {
		return r.Amount, nil
	}

	return 0, nil
}

func (s *Service) StaleAccounts(ctx context.Context, thresholdDays int) ([]*account.Account, error) {
	accounts, err := s.registry.ListAccounts(ctx, account.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	threshold := time.Duration(thresholdDays) * 24 * time.Hour

	return Stale(accounts, threshold, time.Now().UTC()), nil
}

func (s *Service) load(ctx context.Context) ([]*account.Account, map[string]int64, error) {
	accounts, err := s.registry.ListAccounts(ctx, account.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("listing accounts: %w", err)
	}

	readings, err := s.projection.LatestPerAccount(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading latest balances: %w", err)
	}

	latest := make(map[string]int64, len(readings))
	for id, r := range readings {
		latest[id] = r.Amount
	}

	return accounts, latest, nil
}
