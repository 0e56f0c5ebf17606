package milky

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

// maxResponseBytes caps action response reads. File listings are the
// largest realistic payload and stay well below this.
const maxResponseBytes = 10 << 20

// Client is a thin HTTP wrapper around the wire protocol's action surface.
// Every action is a POST to /api/<action> carrying a JSON parameter object
// and returning the uniform response envelope.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a new action client. token may be empty for
// unauthenticated endpoints.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// envelope is the uniform wrapper around every action response.
type envelope[T any] struct {
	Status  string `json:"status"`
	Retcode int64  `json:"retcode"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// APIError is a failure explicitly reported by the wire protocol for one
// action call. It carries the protocol-supplied message; the caller decides
// whether it is user-visible.
type APIError struct {
	Action  string `json:"action"`
	Retcode int64  `json:"retcode"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("milky: %s failed: %s (retcode %d)", e.Action, e.Message, e.Retcode)
	}
	return fmt.Sprintf("milky: %s failed (retcode %d)", e.Action, e.Retcode)
}

// call performs one action against the endpoint and unwraps the response
// envelope. A protocol-reported failure yields *APIError; a network, HTTP,
// or parse failure yields a wrapped transport error. Neither is retried
// here — retry policy belongs to the caller's transport layer.
//
// params must never be nil so that actions without parameters still send a
// serializable body; pass struct{}{}.
func call[T any](ctx context.Context, c *Client, action string, params any) (T, error) {
	var zero T

	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return zero, fmt.Errorf("milky: marshal %s params: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+action, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("milky: create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("milky: %s request failed: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zero, fmt.Errorf("milky: read %s response: %w", action, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, fmt.Errorf("milky: %s: unexpected status %d", action, resp.StatusCode)
	}

	var env envelope[T]
	if err := json.Unmarshal(respBody, &env); err != nil {
		return zero, fmt.Errorf("milky: decode %s response: %w", action, err)
	}

	if env.Status == "failed" {
		return zero, &APIError{
			Action:  action,
			Retcode: env.Retcode,
			Message: env.Message,
		}
	}

	return env.Data, nil
}
