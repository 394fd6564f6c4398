package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/networth/internal/balance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectReadingColumns = `
	id, account_id, date, amount, source, notes, created_at
`

func scanReading(s scanner) (*balance.Reading, error) {
	var r balance.Reading

	var sourceStr string

	var notes sql.NullString

	if err := s.Scan(
		&r.ID, &r.AccountID, &r.Date, &r.Amount, &sourceStr, &notes, &r.CreatedAt,
	); err != nil {
		return nil, err
	}

	r.Source = balance.Source(sourceStr)
	r.Notes = notes.String

	return &r, nil
}

func (s *Store) CreateReading(ctx context.Context, r *balance.Reading) error {
	query := `
		INSERT INTO balance_readings (account_id, date, amount, source, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.AccountID,
		r.Date,
		r.Amount,
		r.Source,
		r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating balance reading: %w", err)
	}

	return nil
}

func (s *Store) ListByAccount(ctx context.Context, accountID string) ([]*balance.Reading, error) {
	query := `SELECT ` + selectReadingColumns + `
		FROM balance_readings
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing balance readings: %w", err)
	}
	defer rows.Close()

	var readings []*balance.Reading

	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning balance reading: %w", err)
		}

		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reading rows: %w", err)
	}

	return readings, nil
}

// LatestPerAccount picks the newest reading per account in one query.
// DISTINCT ON with the created_at tiebreak keeps the choice deterministic
// even though callers are allowed to treat ties as arbitrary.
func (s *Store) LatestPerAccount(ctx context.Context) (map[string]*balance.Reading, error) {
	query := `SELECT DISTINCT ON (account_id) ` + selectReadingColumns + `
		FROM balance_readings
		ORDER BY account_id, date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying latest readings: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]*balance.Reading)

	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning balance reading: %w", err)
		}

		latest[r.AccountID] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating latest reading rows: %w", err)
	}

	return latest, nil
}

func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM balance_readings`); err != nil {
		return fmt.Errorf("clearing balance readings: %w", err)
	}

	return nil
}
