// Package remote is the client for the marketplace REST API. Every failure it
// returns is one of ErrAuthExpired, ErrForbidden, *NetworkError, *ServerError or
// the context's own error when the caller went away.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// Client talks to the backend under baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Response is a raw backend answer. Callers that need to interpret odd statuses
// themselves use it instead of the decoded helpers.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

func (r *Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

// Err converts a non-2xx response into the error taxonomy; nil for 2xx.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return StatusError(r.Status, r.ContentType, r.Body)
}

// Do sends one request. A nil body sends no payload; token, when set, is sent as a
// bearer credential.
func (c *Client) Do(ctx context.Context, method, path, token string, body any) (*Response, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Warn("Remote call failed", zap.String("op", op), zap.Error(err))
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &NetworkError{Op: op, Err: err}
	}

	c.logger.Debug("Remote call", zap.String("op", op), zap.Int("status", resp.StatusCode))
	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// call sends a request and decodes a 2xx JSON answer into out (which may be nil).
func (c *Client) call(ctx context.Context, method, path, token string, in, out any) error {
	resp, err := c.Do(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &ServerError{Status: resp.Status, Message: fmt.Sprintf("unreadable response from %s %s", method, path)}
	}
	return nil
}

// listOf decodes either a bare JSON array or an envelope carrying the array under
// data, results or therapists.
func listOf[T any](ctx context.Context, c *Client, path, token string) ([]T, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	var items []T
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &ServerError{Status: http.StatusOK, Message: "unreadable list from " + path}
		}
		return items, nil
	}
	var envelope struct {
		Data       []T `json:"data"`
		Results    []T `json:"results"`
		Therapists []T `json:"therapists"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unreadable list from " + path}
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	if envelope.Results != nil {
		return envelope.Results, nil
	}
	if envelope.Therapists != nil {
		return envelope.Therapists, nil
	}
	return []T{}, nil
}

func apiPath(format string, args ...any) string {
	return "/api/" + fmt.Sprintf(format, args...) + "/"
}
