// Package api implements the HTTP client for the remote transaction
// store. It translates query parameters into requests and normalizes
// responses; it performs no caching and no retries, and every failure is
// returned to the caller as an error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/query"
)

// Page is the normalized result of a list fetch: the records exactly as
// the store returned them, plus pagination metadata.
type Page struct {
	Transactions []core.Transaction `json:"transactions"`
	Pagination   Pagination         `json:"pagination"`
}

// Pagination mirrors the store's pagination envelope.
type Pagination struct {
	Page       int `json:"page,omitempty"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total,omitempty"`
}

// Client talks to the remote store. The base URL is opaque,
// externally-supplied configuration.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the store at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient allows tests to inject a custom http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// ListTransactions fetches one window of transactions for the given
// params. Sentinel filter values are omitted from the request by
// Params.Values.
func (c *Client) ListTransactions(ctx context.Context, p query.Params) (Page, error) {
	var page Page
	u := c.baseURL + "/transactions"
	if q := p.Values().Encode(); q != "" {
		u += "?" + q
	}
	if err := c.do(ctx, http.MethodGet, u, nil, &page); err != nil {
		return Page{}, fmt.Errorf("list transactions: %w", err)
	}
	return page, nil
}

// CreateTransaction submits a new transaction; the store assigns the id.
func (c *Client) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	var created core.Transaction
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/transactions", t, &created); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction replaces the editable fields of an existing
// transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, t core.Transaction) (core.Transaction, error) {
	var updated core.Transaction
	u := c.baseURL + "/transactions/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, u, t, &updated); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %s: %w", id, err)
	}
	return updated, nil
}

// DeleteTransaction removes a transaction. Irreversible from the
// client's perspective.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	u := c.baseURL + "/transactions/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}

// ListUsers fetches all user accounts (admin view).
func (c *Client) ListUsers(ctx context.Context) ([]core.User, error) {
	var users []core.User
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user account (admin view).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	u := c.baseURL + "/users/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, u string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, u, errorFromBody(resp))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromBody pulls the store's {"error": "..."} message out of a
// failed response, falling back to the HTTP status line.
func errorFromBody(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return fmt.Sprintf("%s (%s)", payload.Error, resp.Status)
	}
	return resp.Status
}
