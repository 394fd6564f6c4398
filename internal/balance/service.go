package balance

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=balance
type Repository interface {
	CreateReading(ctx context.Context, r *Reading) error
	ListByAccount(ctx context.Context, accountID string) ([]*Reading, error)

	// LatestPerAccount returns, for each account with at least one reading,
	// the reading with the maximum date. Ties are broken arbitrarily.
	LatestPerAccount(ctx context.Context) (map[string]*Reading, error)

	// ClearAll removes every reading. Readings are otherwise never deleted.
	ClearAll(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	AccountID string
	Date      time.Time
	Amount    int64 // signed input accepted; stored as magnitude
	Source    Source
	Notes     string
}

// Create appends a reading. Negative input amounts are stored as their
// absolute value; the sign semantics live on the account.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Reading, error) {
	if params.AccountID == "" {
		return nil, fmt.Errorf("account id is required")
	}

	if !ValidSource(params.Source) {
		return nil, fmt.Errorf("invalid reading source: %s", params.Source)
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	amount := params.Amount
	if amount < 0 {
		amount = -amount
	}

	r := &Reading{
		AccountID: params.AccountID,
		Date:      date,
		Amount:    amount,
		Source:    params.Source,
		Notes:     params.Notes,
	}
	if err := s.repo.CreateReading(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]*Reading, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) LatestPerAccount(ctx context.Context) (map[string]*Reading, error) {
	return s.repo.LatestPerAccount(ctx)
}

func (s *Service) ClearAll(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}
