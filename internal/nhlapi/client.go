// Package nhlapi is a thin client for the public NHL HTTP APIs: the web
// API (scores, schedules, standings, gamecenter) and the stats REST API
// (skater/goalie summaries, season list). It does URL construction,
// response decoding into typed records, and nothing else — no caching, no
// retries. Failures surface as *UpstreamError; affirmative absence as
// ErrNotFound.
package nhlapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL      = "https://api-web.nhle.com/v1"
	DefaultStatsBaseURL = "https://api.nhle.com/stats/rest/en"

	defaultUserAgent = "nhl-mcp/1.0"
	defaultTimeout   = 30 * time.Second
)

type Client struct {
	HTTP         *http.Client
	BaseURL      string
	StatsBaseURL string
	UserAgent    string

	logger *slog.Logger

	// now is the clock used for date and season defaults.
	now func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTP = h }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

func WithStatsBaseURL(u string) Option {
	return func(c *Client) { c.StatsBaseURL = u }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTP.Timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		HTTP:         &http.Client{Timeout: defaultTimeout},
		BaseURL:      DefaultBaseURL,
		StatsBaseURL: DefaultStatsBaseURL,
		UserAgent:    defaultUserAgent,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON fetches rawURL and decodes the body into out. A 404 maps to
// ErrNotFound; every other failure maps to *UpstreamError. Decoding is
// all-or-nothing: on any error out must not be used.
func (c *Client) getJSON(ctx context.Context, op, rawURL string, query url.Values, out any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return upstreamErr(op, 0, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "upstream fetch",
			"operation", op,
			"outcome", "transport_error",
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return upstreamErr(op, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return upstreamErr(op, resp.StatusCode, err)
	}

	c.logger.DebugContext(ctx, "upstream fetch",
		"operation", op,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusNotFound {
		return upstreamErr(op, resp.StatusCode, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamErr(op, resp.StatusCode, fmt.Errorf("unexpected status"))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return upstreamErr(op, resp.StatusCode, fmt.Errorf("decode body: %w", err))
	}
	return nil
}

func (c *Client) webURL(format string, args ...any) string {
	return c.BaseURL + fmt.Sprintf(format, args...)
}

func (c *Client) statsURL(format string, args ...any) string {
	return c.StatsBaseURL + fmt.Sprintf(format, args...)
}

// today returns the client's current date in YYYY-MM-DD (UTC).
func (c *Client) today() string {
	return c.now().UTC().Format("2006-01-02")
}
