package plaid

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/networth/internal/provider"
)

// Provider adapts the Plaid API to the normalized provider shape. One
// access token corresponds to one linked institution login ("item").
type Provider struct {
	client       *Client
	accessTokens []string

	// institution names rarely change; cache them per run
	instNames map[string]string
}

func NewProvider(client *Client, accessTokens []string) *Provider {
	return &Provider{
		client:       client,
		accessTokens: accessTokens,
		instNames:    make(map[string]string),
	}
}

func (p *Provider) Name() string { return "plaid" }

// Accounts fetches balances for every linked item. Items are fetched
// sequentially; the first failure aborts this provider (the batch runner
// records it and moves on to the next provider).
func (p *Provider) Accounts(ctx context.Context) ([]provider.Account, error) {
	var accounts []provider.Account

	for _, token := range p.accessTokens {
		resp, err := p.client.GetBalances(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("fetching plaid balances: %w", err)
		}

		label := p.institutionLabel(ctx, resp.Item.InstitutionID)

		for _, a := range resp.Accounts {
			accounts = append(accounts, provider.Account{
				ProviderAccountID: a.AccountID,
				InstitutionLabel:  label,
				AccountName:       a.Name,
				Balance:           balanceCents(a.Balances),
				AccountType:       a.Type,
			})
		}
	}

	return accounts, nil
}

// institutionLabel resolves the institution's display name, falling back
// to the raw id when the lookup fails.
func (p *Provider) institutionLabel(ctx context.Context, institutionID string) string {
	if institutionID == "" {
		return ""
	}

	if name, ok := p.instNames[institutionID]; ok {
		return name
	}

	resp, err := p.client.GetInstitution(ctx, institutionID)
	if err != nil {
		return institutionID
	}

	p.instNames[institutionID] = resp.Institution.Name

	return resp.Institution.Name
}

// balanceCents converts a Plaid balance to a cent magnitude, preferring
// the current balance over the available one.
func balanceCents(b Balances) int64 {
	val := b.Current
	if val == nil {
		val = b.Available
	}

	if val == nil {
		return 0
	}

	cents := decimal.NewFromFloat(*val).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents < 0 {
		cents = -cents
	}

	return cents
}
