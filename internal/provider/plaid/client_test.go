package plaid_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/networth/internal/provider/plaid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *plaid.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := plaid.NewClient(plaid.ClientConfig{
		ClientID: "client-id",
		Secret:   "secret",
	})
	require.NoError(t, err)
	client.SetBaseURL(srv.URL)

	return client
}

func TestClient_GetBalances(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/balance/get", r.URL.Path)
		assert.Equal(t, "2020-09-14", r.Header.Get("Plaid-Version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "client-id", body["client_id"])
		assert.Equal(t, "secret", body["secret"])
		assert.Equal(t, "access-token-1", body["access_token"])

		_, _ = w.Write([]byte(`{
			"accounts": [
				{
					"account_id": "plaid-acct-1",
					"name": "Everyday Checking",
					"type": "depository",
					"balances": {"available": 100.50, "current": 110.25}
				}
			],
			"item": {"item_id": "item-1", "institution_id": "ins_3"},
			"request_id": "req-1"
		}`))
	})

	resp, err := client.GetBalances(context.Background(), "access-token-1")
	require.NoError(t, err)

	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, "plaid-acct-1", resp.Accounts[0].AccountID)
	require.NotNil(t, resp.Accounts[0].Balances.Current)
	assert.Equal(t, 110.25, *resp.Accounts[0].Balances.Current)
	assert.Equal(t, "ins_3", resp.Item.InstitutionID)
}

func TestClient_GetInstitution(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutions/get_by_id", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"institution": {"institution_id": "ins_3", "name": "Chase"},
			"request_id": "req-2"
		}`))
	})

	resp, err := client.GetInstitution(context.Background(), "ins_3")
	require.NoError(t, err)
	assert.Equal(t, "Chase", resp.Institution.Name)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"error_type": "INVALID_INPUT",
			"error_code": "INVALID_ACCESS_TOKEN",
			"error_message": "could not find matching access token",
			"request_id": "req-3"
		}`))
	})

	_, err := client.GetBalances(context.Background(), "bogus")
	require.Error(t, err)

	var apiErr *plaid.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
	assert.Contains(t, apiErr.Error(), "INVALID_INPUT/INVALID_ACCESS_TOKEN")
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := plaid.NewClient(plaid.ClientConfig{ClientID: "only-id"})
	require.Error(t, err)
}
