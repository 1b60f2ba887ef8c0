// Package airtable delivers completed checklists to the Airtable REST API.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"preopedge/checklist"
	"preopedge/config"
)

// APIError is an error response from the Airtable API (the request reached
// the service but was rejected). Transport failures are returned as plain
// wrapped errors instead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client submits checklist records to one Airtable base/table. Each call to
// Submit is a single network attempt; callers own retry policy.
type Client struct {
	cfg   *config.AirtableConfig
	httpc *http.Client
}

// NewClient creates a Client from the Airtable configuration.
func NewClient(cfg *config.AirtableConfig) *Client {
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured reports whether both the credential and the base id are
// present. When false the application runs in demo mode and Submit is
// never called.
func (c *Client) IsConfigured() bool {
	return c.cfg.IsConfigured()
}

// TableName returns the destination table.
func (c *Client) TableName() string {
	return c.cfg.TableName
}

// Submit creates one record and returns its Airtable record id. On an API
// rejection the returned error is an *APIError carrying the service's
// message when it sent one, else "HTTP error <status>".
func (c *Client) Submit(ctx context.Context, sub checklist.Submission) (string, error) {
	body, err := json.Marshal(map[string]interface{}{"fields": Fields(sub)})
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v0/%s/%s", c.cfg.BaseURL, c.cfg.BaseID, url.PathEscape(c.cfg.TableName))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
		}
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return result.ID, nil
}

// errorMessage extracts a human-readable message from an Airtable error
// body, falling back to a generic "HTTP error <status>".
func errorMessage(status int, body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("HTTP error %d", status)
}
