package timeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// TimeFetcher retrieves the current instant from a remote authority.
// This interface is implemented by *Client and can be used for testing.
type TimeFetcher interface {
	FetchTime(ctx context.Context) (time.Time, error)
}

// Ensure Client implements TimeFetcher at compile time.
var _ TimeFetcher = (*Client)(nil)

// Client talks to a worldtimeapi-compatible HTTP endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the public time authority used when none is configured.
	DefaultEndpoint  = "https://worldtimeapi.org/api/ip"
	defaultUserAgent = "flipclock/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given endpoint URL.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the resolved endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchTime issues a single GET and returns the instant reported by the
// authority. There are no retries.
func (c *Client) FetchTime(ctx context.Context) (time.Time, error) {
	if c == nil {
		return time.Time{}, fmt.Errorf("client is nil")
	}
	var payload TimeResponse
	if err := c.get(ctx, &payload); err != nil {
		return time.Time{}, err
	}
	return payload.Instant()
}

func (c *Client) get(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("time api %s returned status %d", c.endpoint.Host, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse time api url %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse time api url %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
