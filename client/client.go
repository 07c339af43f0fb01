// Package client implements the two Barion HTTP clients: PaymentClient for
// the Smart Gateway (POS key in the request body/query) and WalletClient for
// the wallet API (API key in a request header).
//
// Every call is a single upstream round trip with no retries; failures are
// reported through the tagged error types of the root barion package.
package client

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

	barion "github.com/kaliszkypeter/barion-mcp"
)

// redactedPlaceholder replaces credential values in diagnostic output.
const redactedPlaceholder = "[REDACTED]"

// settings holds configuration shared by both clients.
type settings struct {
	baseURL    string
	httpClient *http.Client
	timeouts   barion.TimeoutConfig
	logger     *slog.Logger
}

// Option configures a PaymentClient or WalletClient.
type Option func(*settings)

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		if hc != nil {
			s.httpClient = hc
		}
	}
}

// WithBaseURL overrides the environment-derived API origin. Intended for
// tests pointing at a stub upstream.
func WithBaseURL(u string) Option {
	return func(s *settings) {
		if u != "" {
			s.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeouts sets the timeout configuration.
func WithTimeouts(tc barion.TimeoutConfig) Option {
	return func(s *settings) {
		s.timeouts = tc
	}
}

// WithLogger sets the diagnostic logger. Requests and responses are logged
// at debug level with credential values redacted.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(env barion.Environment, opts ...Option) settings {
	s := settings{
		baseURL:    env.BaseURL(),
		httpClient: &http.Client{},
		timeouts:   barion.DefaultTimeouts,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// redact replaces every occurrence of the given secrets in text. Secrets are
// matched as plain substrings so they disappear from URLs, JSON bodies and
// headers alike.
func redact(text string, secrets []string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		text = strings.ReplaceAll(text, secret, redactedPlaceholder)
	}
	return text
}

// call issues one upstream round trip. method is GET or POST; query is
// appended to the URL for GETs; body is JSON-encoded for POSTs. The parsed
// response lands in out. secrets lists credential values to redact from
// diagnostic output.
func (s *settings) call(ctx context.Context, method, path string, query url.Values, body any, header http.Header, out any, secrets []string) error {
	// Apply the default timeout only when the caller set no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.timeouts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeouts.RequestTimeout)
		defer cancel()
	}

	fullURL := s.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	var reqBodyText string
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
		reqBodyText = string(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	s.logger.Debug("barion request",
		"method", method,
		"url", redact(fullURL, secrets),
		"body", redact(reqBodyText, secrets),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &barion.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &barion.NetworkError{Err: err}
	}

	s.logger.Debug("barion response",
		"status", resp.StatusCode,
		"body", redact(string(respBody), secrets),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &barion.TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	// A 2xx body may still report upstream errors.
	var envelope struct {
		Errors []barion.ErrorItem `json:"Errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err == nil && len(envelope.Errors) > 0 {
		return &barion.UpstreamError{Errors: envelope.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
