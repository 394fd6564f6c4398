package plaid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/networth/internal/provider/plaid"
)

func TestProvider_Accounts(t *testing.T) {
	var institutionCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/balance/get":
			_, _ = w.Write([]byte(`{
				"accounts": [
					{
						"account_id": "plaid-acct-1",
						"name": "Everyday Checking",
						"type": "depository",
						"balances": {"available": 100.50, "current": 2500.00}
					},
					{
						"account_id": "plaid-acct-2",
						"name": "Credit Card",
						"type": "credit",
						"balances": {"available": null, "current": -450.75}
					}
				],
				"item": {"item_id": "item-1", "institution_id": "ins_3"}
			}`))
		case "/institutions/get_by_id":
			institutionCalls++

			_, _ = w.Write([]byte(`{"institution": {"institution_id": "ins_3", "name": "Chase"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := plaid.NewClient(plaid.ClientConfig{ClientID: "id", Secret: "secret"})
	require.NoError(t, err)
	client.SetBaseURL(srv.URL)

	p := plaid.NewProvider(client, []string{"token-1"})
	assert.Equal(t, "plaid", p.Name())

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "plaid-acct-1", accounts[0].ProviderAccountID)
	assert.Equal(t, "Chase", accounts[0].InstitutionLabel)
	assert.Equal(t, int64(250000), accounts[0].Balance)
	assert.Equal(t, "depository", accounts[0].AccountType)

	// Liability balances come back as magnitudes.
	assert.Equal(t, int64(45075), accounts[1].Balance)

	// Second run hits the institution-name cache.
	_, err = p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, institutionCalls)
}

func TestProvider_Accounts_InstitutionLookupFallsBackToID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/balance/get":
			_, _ = w.Write([]byte(`{
				"accounts": [{"account_id": "a1", "name": "Acct", "balances": {"current": 10.00}}],
				"item": {"institution_id": "ins_unknown"}
			}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_type": "INVALID_INPUT", "error_code": "INVALID_INSTITUTION"}`))
		}
	}))
	defer srv.Close()

	client, err := plaid.NewClient(plaid.ClientConfig{ClientID: "id", Secret: "secret"})
	require.NoError(t, err)
	client.SetBaseURL(srv.URL)

	p := plaid.NewProvider(client, []string{"token-1"})

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ins_unknown", accounts[0].InstitutionLabel)
}
