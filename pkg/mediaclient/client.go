// Package mediaclient is the Go client for the watchlog API. It mirrors the
// wire contract of the server and keeps a page cache for list rendering.
package mediaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/watchloghq/watchlog/pkg/types"
)

// Media is one tracked record as the API returns it.
type Media struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Director    string    `json:"director"`
	Budget      *float64  `json:"budget,omitempty"`
	BudgetLabel *string   `json:"budgetLabel,omitempty"`
	Location    *string   `json:"location,omitempty"`
	DurationMin *int      `json:"durationMin,omitempty"`
	Year        *string   `json:"year,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	PosterURL   *string   `json:"posterUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListResult is one page of records plus totals.
type ListResult struct {
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int64   `json:"total"`
	Items []Media `json:"items"`
}

// CreateMediaRequest is the body for creating a record.
type CreateMediaRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Director    string   `json:"director"`
	Budget      *float64 `json:"budget,omitempty"`
	BudgetLabel *string  `json:"budgetLabel,omitempty"`
	Location    *string  `json:"location,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty"`
	Year        *string  `json:"year,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	PosterURL   *string  `json:"posterUrl,omitempty"`
}

// UpdateMediaRequest is the body for a partial update. Nil fields are left
// untouched by the server.
type UpdateMediaRequest struct {
	Title       *string  `json:"title,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Director    *string  `json:"director,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	BudgetLabel *string  `json:"budgetLabel,omitempty"`
	Location    *string  `json:"location,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty"`
	Year        *string  `json:"year,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	PosterURL   *string  `json:"posterUrl,omitempty"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("watchlog api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("watchlog api: unexpected status %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, e.g. for custom timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches one page of records.
func (c *Client) List(ctx context.Context, page, limit int) (*ListResult, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	target := c.baseURL + "/api/media/getMedia"
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var result ListResult
	if err := c.do(ctx, http.MethodGet, target, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create adds a record and returns it as persisted.
func (c *Client) Create(ctx context.Context, req CreateMediaRequest) (*Media, error) {
	var record Media
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/media/newMedia", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies a partial update and returns the merged record.
func (c *Client) Update(ctx context.Context, id int64, req UpdateMediaRequest) (*Media, error) {
	var record Media
	target := fmt.Sprintf("%s/api/media/update/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, target, req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a record. A missing id surfaces as an APIError with 404.
func (c *Client) Delete(ctx context.Context, id int64) error {
	target := fmt.Sprintf("%s/api/media/delete/%d", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, target, nil, nil)
}

func (c *Client) do(ctx context.Context, method, target string, body any, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling watchlog api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}
	return apiErr
}
