// Package sources contains one connector per external statistics provider.
// Every connector normalizes its provider's response into model.Observation
// and converts all network and parse failures into {available:false, error}
// rather than returning Go errors to the router.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/util"
	"github.com/ppiankov/clearview/internal/worker"
)

// maxResponseBytes caps provider responses; statistical payloads are small
const maxResponseBytes = 4 << 20

// Client is the shared HTTP client for all statistics connectors. It owns
// the per-call timeout and the per-host rate limiter.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *worker.Limiter
}

// NewClient creates a connector client from HTTP configuration
func NewClient(cfg model.HTTPConfig) *Client {
	rps := cfg.RatePerHost
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
		},
		userAgent: cfg.UserAgent,
		limiter:   worker.NewLimiter(rps, cfg.RateBurst),
	}
}

// getJSON performs a rate-limited GET and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values, out interface{}) error {
	full := rawURL
	if len(params) > 0 {
		full = rawURL + "?" + params.Encode()
	}

	if err := c.limiter.Wait(ctx, full); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// formatValue renders a provider numeric value for display without trailing
// noise (World Bank and Eurostat return raw floats).
func formatValue(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	// Trim trailing zeros but keep at least one decimal digit off
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
