package account

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id string) (*Account, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*Account, error)
	UpdateAccount(ctx context.Context, a *Account) error
	SetActive(ctx context.Context, id string, active bool) error

	// TouchLastUpdated sets last_updated unconditionally, even when the new
	// timestamp is older than the stored one.
	TouchLastUpdated(ctx context.Context, id string, at time.Time) error

	// SetExternalIDIfEmpty backfills external_id only when no linkage exists
	// yet. Calling it again with any value is a no-op.
	SetExternalIDIfEmpty(ctx context.Context, id, externalID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID              string
	Institution     string
	DisplayName     string
	Type            Type
	IsAsset         bool
	ExternalID      string
	IngestionMethod IngestionMethod
}

type ListFilter struct {
	ActiveOnly bool
	Method     *IngestionMethod
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if params.ID == "" {
		return nil, fmt.Errorf("account id is required")
	}

	if !ValidType(params.Type) {
		return nil, fmt.Errorf("invalid account type: %s", params.Type)
	}

	if !ValidMethod(params.IngestionMethod) {
		return nil, fmt.Errorf("invalid ingestion method: %s", params.IngestionMethod)
	}

	a := &Account{
		ID:              params.ID,
		Institution:     params.Institution,
		DisplayName:     params.DisplayName,
		Type:            params.Type,
		IsAsset:         params.IsAsset,
		ExternalID:      params.ExternalID,
		IngestionMethod: params.IngestionMethod,
		IsActive:        true,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, filter)
}

func (s *Service) Update(ctx context.Context, a *Account) error {
	if !ValidType(a.Type) {
		return fmt.Errorf("invalid account type: %s", a.Type)
	}

	return s.repo.UpdateAccount(ctx, a)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *Service) Activate(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, true)
}
