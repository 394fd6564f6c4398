package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/networth/internal/account"
	"github.com/MrJamesThe3rd/networth/internal/balance"
)

//go:generate mockgen -source=service.go -destination=stores_mock.go -package=reconcile
type AccountStore interface {
	TouchLastUpdated(ctx context.Context, id string, at time.Time) error
	SetExternalIDIfEmpty(ctx context.Context, id, externalID string) error
}

type BalanceStore interface {
	CreateReading(ctx context.Context, r *balance.Reading) error
}

// Reading is a raw balance observation ready to be written back against
// a matched account.
type Reading struct {
	ProviderAccountID string
	Source            balance.Source
	Amount            int64     // signed input accepted
	Date              time.Time // zero means "now"
	Note              string
}

// Service performs the write-back for a matched account: append the
// reading, touch last_updated, backfill the external-id linkage.
//
// The three writes are intentionally not transactional. Each one is
// idempotent under retry: a partial failure leaves the store recoverable
// and the next successful fetch heals last_updated; the external-id
// backfill is guarded in the store and simply retried.
type Service struct {
	accounts AccountStore
	balances BalanceStore

	now func() time.Time
}

func NewService(accounts AccountStore, balances BalanceStore) *Service {
	return &Service{
		accounts: accounts,
		balances: balances,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Apply writes one reading against a matched account and returns the
// stored reading. Errors here are store errors and fatal to the batch.
func (s *Service) Apply(ctx context.Context, acct *account.Account, r Reading) (*balance.Reading, error) {
	if !balance.ValidSource(r.Source) {
		return nil, fmt.Errorf("invalid reading source: %s", r.Source)
	}

	date := r.Date
	if date.IsZero() {
		date = s.now()
	}

	amount := r.Amount
	if amount < 0 {
		amount = -amount
	}

	note := r.Note
	if note == "" && r.ProviderAccountID != "" {
		note = fmt.Sprintf("%s account %s", r.Source, r.ProviderAccountID)
	}

	reading := &balance.Reading{
		AccountID: acct.ID,
		Date:      date,
		Amount:    amount,
		Source:    r.Source,
		Notes:     note,
	}
	if err := s.balances.CreateReading(ctx, reading); err != nil {
		return nil, fmt.Errorf("writing balance reading: %w", err)
	}

	// Unconditional: even a reading older than the last recorded one
	// moves last_updated.
	if err := s.accounts.TouchLastUpdated(ctx, acct.ID, date); err != nil {
		return nil, fmt.Errorf("updating account timestamp: %w", err)
	}

	if acct.ExternalID == "" && r.ProviderAccountID != "" {
		if err := s.accounts.SetExternalIDIfEmpty(ctx, acct.ID, r.ProviderAccountID); err != nil {
			return nil, fmt.Errorf("backfilling external id: %w", err)
		}
	}

	return reading, nil
}
