package simplefin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/networth/internal/provider"
)

// Provider adapts one or more SimpleFIN bridges to the normalized
// provider shape.
type Provider struct {
	clients []*Client
}

func NewProvider(accessURLs []string, timeout time.Duration) *Provider {
	clients := make([]*Client, 0, len(accessURLs))
	for _, u := range accessURLs {
		clients = append(clients, NewClient(u, timeout))
	}

	return &Provider{clients: clients}
}

func (p *Provider) Name() string { return "simplefin" }

func (p *Provider) Accounts(ctx context.Context) ([]provider.Account, error) {
	var accounts []provider.Account

	for _, c := range p.clients {
		set, err := c.FetchAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching simplefin accounts: %w", err)
		}

		if len(set.Errors) > 0 {
			return nil, fmt.Errorf("simplefin reported errors: %v", set.Errors)
		}

		for _, a := range set.Accounts {
			na := provider.Account{
				ProviderAccountID: a.ID,
				InstitutionLabel:  a.Org.Name,
				AccountName:       a.Name,
				Balance:           balanceCents(a.Balance),
			}
			if a.BalanceDate > 0 {
				na.AsOf = time.Unix(a.BalanceDate, 0).UTC()
			}

			accounts = append(accounts, na)
		}
	}

	return accounts, nil
}

// balanceCents parses a SimpleFIN decimal-string balance into a cent
// magnitude. An unparseable balance reads as 0 rather than failing the
// whole account set.
func balanceCents(s string) int64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents < 0 {
		cents = -cents
	}

	return cents
}
