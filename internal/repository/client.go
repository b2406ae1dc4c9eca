package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"simplesocial/internal/config"
	"simplesocial/internal/middleware"
)

// Client talks to the backend. Every request passes through the middleware
// chain, which attaches the session's bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg *config.Config, tokens middleware.TokenSource, logger *zap.Logger) *Client {
	return NewClientWithTransport(cfg, tokens, logger, http.DefaultTransport)
}

func NewClientWithTransport(cfg *config.Config, tokens middleware.TokenSource, logger *zap.Logger, base http.RoundTripper) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := middleware.Chain(
		base,
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.AuthMiddleware(tokens),
	)

	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Backend.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req)
}

func decodeJSON(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// drain discards the body so the connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
}
