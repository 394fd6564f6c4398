package provider

import (
	"context"
	"time"
)

// Account is the normalized shape every provider adapter produces. The
// matcher and reconciler only ever see this, never a provider's native
// payload.
type Account struct {
	ProviderAccountID string
	InstitutionLabel  string
	AccountName       string
	Balance           int64 // cents, magnitude
	AccountType       string
	AsOf              time.Time // zero when the provider supplied no timestamp
}

// Provider fetches current account balances from one aggregation API.
// Name must equal the matching ingestion method tag ("plaid",
// "simplefin").
type Provider interface {
	Name() string
	Accounts(ctx context.Context) ([]Account, error)
}
