package clash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Clash of Clans API endpoint, used when no
// base URL is supplied at construction.
const DefaultBaseURL = "https://api.clashofclans.com/v1"

// Client is a Clash of Clans API client. Configuration is fixed at
// construction; a Client is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	defaults   RequestOptions
	logger     zerolog.Logger
}

// RequestOptions carries per-request header and query-string overrides.
type RequestOptions struct {
	Headers map[string]string
	Query   url.Values
}

// NewClient creates a new Clash of Clans client. The token is required and is
// sent as a bearer token on every request; an empty token fails construction
// with ErrMissingToken. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("clash: %w", ErrMissingToken)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// buildRequest assembles an HTTP GET request for path. Headers and query
// parameters are merged in increasing precedence: the fixed base template
// (Accept, Authorization), then the per-call options, then the construction-time
// request defaults. Note that construction defaults overriding per-call values
// is the documented contract here, inverted from the usual convention.
func (c *Client) buildRequest(ctx context.Context, path string, opts RequestOptions) (*http.Request, error) {
	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + c.token,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	for k, v := range c.defaults.Headers {
		headers[k] = v
	}

	query := url.Values{}
	for k, vs := range opts.Query {
		query[k] = vs
	}
	for k, vs := range c.defaults.Query {
		query[k] = vs
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// do executes a GET against path and returns the raw JSON body. Transport and
// HTTP errors propagate unmodified; non-2xx responses become an *APIError. The
// client never inspects response content beyond checking it is valid JSON.
func (c *Client) do(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	req, err := c.buildRequest(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("url", req.URL.String()).
		Msg("Making Clash of Clans API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON in response from %s", req.URL.Path)
	}

	return json.RawMessage(body), nil
}

// encodeTag percent-encodes a clan or player tag for use as a path segment.
// Tags begin with '#', which must travel as %23.
func encodeTag(tag string) string {
	return url.PathEscape(tag)
}

// Clan fetches a single clan by tag.
func (c *Client) Clan(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/clans/"+encodeTag(tag), RequestOptions{})
}

// ClanMembers fetches the member list of a clan.
func (c *Client) ClanMembers(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/clans/"+encodeTag(tag)+"/members", RequestOptions{})
}

// ClanWarLog fetches a clan's war log.
func (c *Client) ClanWarLog(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/clans/"+encodeTag(tag)+"/warlog", RequestOptions{})
}

// ClanCurrentWar fetches information about a clan's current war.
func (c *Client) ClanCurrentWar(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/clans/"+encodeTag(tag)+"/currentwar", RequestOptions{})
}

// ClanLeagueGroup fetches a clan's current war league group.
func (c *Client) ClanLeagueGroup(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/clans/"+encodeTag(tag)+"/currentwar/leaguegroup", RequestOptions{})
}

// ClanLeagueWar fetches a single clan war league war by war tag.
func (c *Client) ClanLeagueWar(ctx context.Context, warTag string) (json.RawMessage, error) {
	return c.do(ctx, "/clanwarleagues/wars/"+encodeTag(warTag), RequestOptions{})
}

// Leagues fetches the list of leagues.
func (c *Client) Leagues(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "/leagues", RequestOptions{})
}

// Player fetches a single player by tag.
func (c *Client) Player(ctx context.Context, tag string) (json.RawMessage, error) {
	return c.do(ctx, "/players/"+encodeTag(tag), RequestOptions{})
}
