package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/networth/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, institution, display_name, type, is_asset, external_id,
	ingestion_method, last_updated, is_active, created_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr, methodStr string

	var externalID sql.NullString

	var lastUpdated sql.NullTime

	if err := s.Scan(
		&a.ID, &a.Institution, &a.DisplayName, &typeStr, &a.IsAsset, &externalID,
		&methodStr, &lastUpdated, &a.IsActive, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)
	a.IngestionMethod = account.IngestionMethod(methodStr)
	a.ExternalID = externalID.String

	if lastUpdated.Valid {
		t := lastUpdated.Time
		a.LastUpdated = &t
	}

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, institution, display_name, type, is_asset, external_id, ingestion_method, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.ID,
		a.Institution,
		a.DisplayName,
		a.Type,
		a.IsAsset,
		a.ExternalID,
		a.IngestionMethod,
		a.IsActive,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

// ListAccounts returns accounts in stable creation order. The matcher relies
// on this ordering when claiming an unlinked account for an institution.
func (s *Store) ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ActiveOnly {
		query += " AND is_active = TRUE"
	}

	if filter.Method != nil {
		query += fmt.Sprintf(" AND ingestion_method = $%d", argIdx)

		args = append(args, *filter.Method)
		argIdx++
	}

	query += " ORDER BY created_at ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET institution = $1, display_name = $2, type = $3, is_asset = $4, ingestion_method = $5
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		a.Institution,
		a.DisplayName,
		a.Type,
		a.IsAsset,
		a.IngestionMethod,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE accounts SET is_active = $1 WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("setting account active flag: %w", err)
	}

	return nil
}

func (s *Store) TouchLastUpdated(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE accounts SET last_updated = $1 WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("touching last updated: %w", err)
	}

	return nil
}

// SetExternalIDIfEmpty writes the linkage only when none exists. The guard
// lives in the query so concurrent fetches cannot overwrite an established
// linkage.
func (s *Store) SetExternalIDIfEmpty(ctx context.Context, id, externalID string) error {
	query := `
		UPDATE accounts
		SET external_id = $1
		WHERE id = $2 AND (external_id IS NULL OR external_id = '')
	`

	_, err := s.db.ExecContext(ctx, query, externalID, id)
	if err != nil {
		return fmt.Errorf("backfilling external id: %w", err)
	}

	return nil
}
