// Package paieapi is the typed client for the external payroll backend.
// All persistence and payroll computation happens there; the gateway only
// orchestrates calls.
package paieapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/paielab/paie-gateway/internal/config"
)

// Client holds the connection settings shared by every session. It is
// safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.PayrollAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// WithToken binds a bearer token to the client. The session is the only
// thing that carries credentials: there are no process-wide default
// headers to mutate, a request is authenticated by the session that
// built it.
func (c *Client) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Anonymous returns a session without credentials, for the login call.
func (c *Client) Anonymous() *Session {
	return &Session{client: c}
}

// Session is an authenticated view of the client, created at login and
// dropped at logout.
type Session struct {
	client *Client
	token  string
}

// APIError is a non-2xx answer from the payroll API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payroll API error [%d]: %s", e.StatusCode, e.Message)
}

// errorBody is the FastAPI error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Session) get(ctx context.Context, path string, query url.Values, out any) error {
	return s.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (s *Session) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return s.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json", out)
}

func (s *Session) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return s.do(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (s *Session) del(ctx context.Context, path string) error {
	return s.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

func (s *Session) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := s.client.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	s.client.logger.Debug("payroll API request", slog.String("method", method), slog.String("path", path))

	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("payroll API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode payroll API response: %w", err)
	}
	return nil
}

func (s *Session) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil && body.Detail != "" {
			apiErr.Message = body.Detail
		}
	}

	s.client.logger.Warn("payroll API error",
		slog.Int("status", apiErr.StatusCode),
		slog.String("message", apiErr.Message),
	)
	return apiErr
}
