// Package marketplace is the outbound HTTP adapter for the upstream
// marketplace API, the system of record for carts, addresses, orders and
// payments. One Client implements all four outbound ports; the per-concern
// methods live in sibling files.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

// Client talks to the upstream marketplace REST API. Safe for concurrent
// use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a marketplace client. A timeout of zero or less selects
// a 15 second default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// upstreamError is the error payload shape the marketplace API returns.
type upstreamError struct {
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Transport failures map to errs.NetworkFailureError; upstream
// rejections map onto the error taxonomy by status code.
func (c *Client) do(
	ctx context.Context,
	sess ports.Session,
	method, path string,
	body, out any,
	headers map[string]string,
) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewNetworkFailureError(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(resp, method+" "+path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewNetworkFailureError(method+" "+path, err)
	}
	return nil
}

// stream sends one request and hands the raw response back to the caller,
// who owns the body. Used for document downloads.
func (c *Client) stream(ctx context.Context, sess ports.Session, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewNetworkFailureError("GET "+path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		return nil, c.mapError(resp, "GET "+path)
	}
	return resp, nil
}

func (c *Client) mapError(resp *http.Response, op string) error {
	var payload upstreamError
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Message == "" {
		payload.Message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.NewNotAuthenticatedError(payload.Message)
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("resource", payload.Subject)
	case http.StatusConflict:
		return errs.NewNotAvailableError(payload.Subject, payload.Message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errs.NewValueIsInvalidErrorWithCause("request", fmt.Errorf("%s", payload.Message))
	default:
		return errs.NewNetworkFailureError(op, fmt.Errorf("upstream returned %s: %s", resp.Status, payload.Message))
	}
}
