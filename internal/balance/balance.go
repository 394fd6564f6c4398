package balance

import (
	"time"

	"github.com/google/uuid"
)

// Source records where a reading came from.
type Source string

const (
	SourceManual    Source = "manual"
	SourceCSV       Source = "csv"
	SourcePlaid     Source = "plaid"
	SourceSimpleFIN Source = "simplefin"
)

// Reading is one timestamped observation of an account's balance.
// Amount is a non-negative magnitude in cents; whether it counts as an
// asset or a liability is derived from the referenced account, never
// stored here. Readings are append-only.
type Reading struct {
	ID        uuid.UUID
	AccountID string
	Date      time.Time
	Amount    int64 // cents, magnitude
	Source    Source
	Notes     string
	CreatedAt time.Time
}

// ValidSource reports whether s is one of the known reading sources.
func ValidSource(s Source) bool {
	switch s {
	case SourceManual, SourceCSV, SourcePlaid, SourceSimpleFIN:
		return true
	}

	return false
}
