package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/structure"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("service returned status %d", e.Code)
	}
	return fmt.Sprintf("service returned status %d: %s", e.Code, e.Body)
}

// Client is the HTTP implementation of [Service].
//
// Document reads are retried with bounded exponential backoff on transport
// errors and 5xx responses; they are idempotent. BatchUpdate is never
// retried: a write retry after an ambiguous failure could double-apply a
// non-idempotent batch.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries uint64
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries sets the retry budget for document reads. Zero disables
// retries.
func WithMaxRetries(n uint64) ClientOption {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates a client for the service at baseURL authenticating
// with the given bearer token.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Document fetches the raw payload for documentID.
func (c *Client) Document(ctx context.Context, documentID string) (*structure.DocumentPayload, error) {
	url := fmt.Sprintf("%s/v1/documents/%s", c.baseURL, documentID)

	var payload structure.DocumentPayload
	op := func() error {
		err := c.do(ctx, http.MethodGet, url, nil, &payload)
		if err == nil {
			return nil
		}
		var se *StatusError
		if errors.As(err, &se) && se.Code < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", documentID, err)
	}
	return &payload, nil
}

// batchUpdateBody is the wire envelope for a batchUpdate call.
type batchUpdateBody struct {
	Requests []request.Record `json:"requests"`
}

// BatchUpdate submits all records as one transaction. The service applies
// them in order; a failure applies none of them.
func (c *Client) BatchUpdate(ctx context.Context, documentID string, records []request.Record) (*BatchResult, error) {
	url := fmt.Sprintf("%s/v1/documents/%s:batchUpdate", c.baseURL, documentID)

	var result BatchResult
	err := c.do(ctx, http.MethodPost, url, batchUpdateBody{Requests: records}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}
	return &result, nil
}

// do performs one HTTP round trip with auth and a correlation id, decoding
// a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}
