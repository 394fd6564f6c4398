package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	sandboxBaseURL    = "https://sandbox.plaid.com"
	productionBaseURL = "https://production.plaid.com"

	apiVersion = "2020-09-14"
)

// Client is a minimal HTTP client for the Plaid balance endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
}

type ClientConfig struct {
	// Environment is "sandbox" or "production". Anything else defaults
	// to sandbox.
	Environment string
	ClientID    string
	Secret      string
	Timeout     time.Duration

	// HTTPClient overrides the default client (used in tests).
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ClientID == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("plaid client id and secret are required")
	}

	baseURL := sandboxBaseURL
	if strings.EqualFold(cfg.Environment, "production") {
		baseURL = productionBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		clientID:   cfg.ClientID,
		secret:     cfg.Secret,
	}, nil
}

// GetBalances fetches real-time balances for every account behind an
// access token.
func (c *Client) GetBalances(ctx context.Context, accessToken string) (*BalancesGetResponse, error) {
	body := map[string]any{
		"access_token": accessToken,
	}

	return doPost[BalancesGetResponse](ctx, c, "/accounts/balance/get", body)
}

// GetInstitution resolves an institution id to its display name.
func (c *Client) GetInstitution(ctx context.Context, institutionID string) (*InstitutionsGetByIDResponse, error) {
	body := map[string]any{
		"institution_id": institutionID,
		"country_codes":  []string{"US"},
	}

	return doPost[InstitutionsGetByIDResponse](ctx, c, "/institutions/get_by_id", body)
}

// SetBaseURL points the client at a test server.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

func doPost[Resp any](ctx context.Context, c *Client, path string, reqBody map[string]any) (*Resp, error) {
	reqBody["client_id"] = c.clientID
	reqBody["secret"] = c.secret

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Plaid-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp)
	}

	var result Resp
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.ErrorType = errResp.ErrorType
		apiErr.ErrorCode = errResp.ErrorCode
		apiErr.ErrorMessage = errResp.ErrorMessage
		apiErr.RequestID = errResp.RequestID
	} else {
		apiErr.ErrorMessage = string(body)
	}

	return apiErr
}
