// Package client is the Go counterpart of the mobile app's transactions data
// hook: a thin JSON client for the wallet-server API plus a View that keeps
// list, summary, loading, and error state consistent with the store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the API response model.
type Transaction struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// Summary is a user's income/expense breakdown. Expense retains its negative
// sign.
type Summary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CreateTransactionRequest is the body for creating a transaction.
type CreateTransactionRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

type apiError struct {
	Message string `json:"error"`
}

// Client calls the wallet-server HTTP API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListTransactions fetches all of a user's transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	var transactions []Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+userID, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetSummary fetches a user's balance/income/expense sums.
func (c *Client) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	var summary Summary
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary/"+userID, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateTransaction creates one transaction and returns the persisted row.
func (c *Client) CreateTransaction(ctx context.Context, create CreateTransactionRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", create, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction hard-deletes one transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil, nil)
}
