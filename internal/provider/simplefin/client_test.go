package simplefin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/networth/internal/provider/simplefin"
)

func TestClient_FetchAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"errors": [],
			"accounts": [
				{
					"id": "sfin-1",
					"name": "Apple Card",
					"currency": "USD",
					"balance": "-450.00",
					"balance-date": 1714521600,
					"org": {"domain": "applecard.apple.com", "name": "Apple Card"}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := simplefin.NewClient(srv.URL, time.Second)

	set, err := client.FetchAccounts(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Accounts, 1)
	assert.Equal(t, "sfin-1", set.Accounts[0].ID)
	assert.Equal(t, "-450.00", set.Accounts[0].Balance)
	assert.Equal(t, "Apple Card", set.Accounts[0].Org.Name)
	assert.Empty(t, set.Errors)
}

func TestClient_FetchAccounts_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	client := simplefin.NewClient(srv.URL, time.Second)

	_, err := client.FetchAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestProvider_Accounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"errors": [],
			"accounts": [
				{
					"id": "sfin-2",
					"name": "Savings",
					"balance": "1234.56",
					"balance-date": 1714521600,
					"org": {"name": "Wells Fargo"}
				},
				{
					"id": "sfin-3",
					"name": "Broken",
					"balance": "not-a-number",
					"org": {"name": "Somewhere"}
				}
			]
		}`))
	}))
	defer srv.Close()

	p := simplefin.NewProvider([]string{srv.URL}, time.Second)
	assert.Equal(t, "simplefin", p.Name())

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "sfin-2", accounts[0].ProviderAccountID)
	assert.Equal(t, "Wells Fargo", accounts[0].InstitutionLabel)
	assert.Equal(t, int64(123456), accounts[0].Balance)
	assert.Equal(t, time.Unix(1714521600, 0).UTC(), accounts[0].AsOf)

	// Unparseable balances read as 0 rather than failing the set.
	assert.Equal(t, int64(0), accounts[1].Balance)
	assert.True(t, accounts[1].AsOf.IsZero())
}

func TestProvider_Accounts_BridgeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": ["Connection to Wells Fargo failed"], "accounts": []}`))
	}))
	defer srv.Close()

	p := simplefin.NewProvider([]string{srv.URL}, time.Second)

	_, err := p.Accounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Connection to Wells Fargo failed")
}
