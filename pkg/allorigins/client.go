// Package allorigins is a small client for the public allorigins.win CORS
// relay. The relay fetches a URL server-side and hands back its body as text
// inside a JSON wrapper; callers re-parse the contents themselves.
package allorigins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public relay endpoint.
	DefaultBaseURL = "https://api.allorigins.win"

	defaultTimeout = 30 * time.Second
)

// wrapped is the relay response shape. Only contents matters here; the
// relay's status block is informational.
type wrapped struct {
	Contents string `json:"contents"`
}

// Client fetches URLs through the relay.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a relay client with sane defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Fetch retrieves target through the relay and returns the original
// response body bytes, ready for a second parse by the caller.
func (c *Client) Fetch(ctx context.Context, target string) ([]byte, error) {
	relayURL := fmt.Sprintf("%s/get?url=%s", c.baseURL, url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, relayURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read relay response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	var w wrapped
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("failed to decode relay wrapper: %w", err)
	}
	if w.Contents == "" {
		return nil, fmt.Errorf("relay returned empty contents")
	}

	log.Debug().Str("target", target).Int("bytes", len(w.Contents)).Msg("fetched through relay")
	return []byte(w.Contents), nil
}
