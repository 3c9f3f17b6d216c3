// Package assistant implements the external bookkeeping-assistant providers
// over a JSON HTTP API. The client is advisory infrastructure: callers treat
// any error it returns as a signal to degrade, never as a ledger failure.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smallbooks/smallbooks/internal/core/domain"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
)

const defaultHTTPTimeout = 15 * time.Second

// Client talks to the assistant service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the assistant service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var (
	_ portssvc.SuggestionProvider = (*Client)(nil)
	_ portssvc.AdviceProvider     = (*Client)(nil)
)

type suggestRequest struct {
	Description string   `json:"description"`
	Side        string   `json:"side"`
	Candidates  []string `json:"candidates"`
}

type suggestResponse struct {
	AccountName string `json:"accountName"`
}

// SuggestAccount asks the assistant which candidate account name fits the
// described entry.
func (c *Client) SuggestAccount(ctx context.Context, description string, side domain.EntrySide, candidates []string) (string, error) {
	reqBody := suggestRequest{
		Description: description,
		Side:        string(side),
		Candidates:  candidates,
	}
	var respBody suggestResponse
	if err := c.postJSON(ctx, "/v1/suggest-account", reqBody, &respBody); err != nil {
		return "", err
	}
	return respBody.AccountName, nil
}

type adviceRequestRow struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
	Balance     string `json:"balance"`
}

type adviceRequest struct {
	TrialBalance []adviceRequestRow `json:"trialBalance"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// Advise sends a condensed trial balance and returns the assistant's
// narrative commentary.
func (c *Client) Advise(ctx context.Context, rows []domain.TrialBalanceRow) (string, error) {
	reqBody := adviceRequest{TrialBalance: make([]adviceRequestRow, len(rows))}
	for i, row := range rows {
		reqBody.TrialBalance[i] = adviceRequestRow{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Balance:     row.Balance.String(),
		}
	}
	var respBody adviceResponse
	if err := c.postJSON(ctx, "/v1/advice", reqBody, &respBody); err != nil {
		return "", err
	}
	return respBody.Advice, nil
}

// postJSON performs a POST with a JSON body and decodes the JSON response
// into out. Non-2xx statuses are returned as errors.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return nil
}
