package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the store API base URL.
	DefaultBaseURL = "https://anfopublicationhouse.com/api/endpoints"

	defaultTimeout = 30 * time.Second
)

// Envelope is the standard store API response wrapper. Data is kept raw so
// each resource method can decode its own payload shape.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a well-formed upstream reply with success=false. The server
// message is preserved so it can be surfaced to the user.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "store api: request rejected"
	}
	return fmt.Sprintf("store api: %s", e.Message)
}

// ParseEnvelope decodes a raw response body into an Envelope. It is also
// used on bodies recovered through the CORS relay, which arrive as text and
// need this second parse step.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}

// Client is a minimal HTTP client for the store API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient constructs a store API client. An empty baseURL or zero timeout
// fall back to sane defaults.
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
		debug:      os.Getenv("ENV") == "development",
	}
}

// URL builds the absolute request URL for an endpoint and query. It is
// exported so callers can route the identical URL through a relay.
func (c *Client) URL(endpoint string, query url.Values) string {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs the HTTP request and returns the raw response body. It fails
// on transport errors and on non-2xx statuses; body decoding is left to the
// caller.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	fullURL := c.URL(endpoint, query)

	if c.debug {
		ev := log.Debug().Str("method", method).Str("url", fullURL)
		if payload != nil {
			ev = ev.RawJSON("request", payload)
		}
		ev.Msg("[STOREAPI] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("url", fullURL).
			Int("status_code", resp.StatusCode).
			Msg("[STOREAPI] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return respBody, nil
}

// envelope performs a request and decodes the standard response wrapper. A
// well-formed reply with success=false is returned as *APIError.
func (c *Client) envelope(ctx context.Context, method, endpoint string, query url.Values, body any) (*Envelope, error) {
	respBody, err := c.do(ctx, method, endpoint, query, body)
	if err != nil {
		return nil, err
	}
	env, err := ParseEnvelope(respBody)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return env, &APIError{Message: env.Message}
	}
	return env, nil
}

// Ping checks that the API root is reachable and answering with the
// standard envelope.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.envelope(ctx, http.MethodGet, "/", nil, nil)
	return err
}
