package clash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures every request the client makes so tests can assert
// on paths, headers and call counts.
type recordingServer struct {
	*httptest.Server
	requests []*http.Request
}

func newRecordingServer(t *testing.T, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clone := r.Clone(r.Context())
		rs.requests = append(rs.requests, clone)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(baseURL, "test-token", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing token", func(t *testing.T) {
		client, err := NewClient("http://localhost:1", "", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Nil(t, client)
	})

	t.Run("default base URL", func(t *testing.T) {
		client, err := NewClient("", "test-token", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:1234/", "test-token", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:1234", client.baseURL)
	})
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:1", WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client := newTestClient(t, "http://localhost:1", WithHTTPClient(custom))
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestBearerToken(t *testing.T) {
	server := newRecordingServer(t, `{}`)
	client := newTestClient(t, server.URL)

	_, err := client.Leagues(context.Background())
	require.NoError(t, err)

	require.Len(t, server.requests, 1)
	assert.Equal(t, "Bearer test-token", server.requests[0].Header.Get("Authorization"))
	assert.Equal(t, "application/json", server.requests[0].Header.Get("Accept"))
}

func TestDirectEndpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func(*Client) error
		wantPath string
	}{
		{
			name: "clan lookup",
			call: func(c *Client) error {
				_, err := c.Clan(ctx, "#ABC123")
				return err
			},
			wantPath: "/clans/%23ABC123",
		},
		{
			name: "clan members",
			call: func(c *Client) error {
				_, err := c.ClanMembers(ctx, "#ABC123")
				return err
			},
			wantPath: "/clans/%23ABC123/members",
		},
		{
			name: "clan war log",
			call: func(c *Client) error {
				_, err := c.ClanWarLog(ctx, "#ABC123")
				return err
			},
			wantPath: "/clans/%23ABC123/warlog",
		},
		{
			name: "clan current war",
			call: func(c *Client) error {
				_, err := c.ClanCurrentWar(ctx, "#ABC123")
				return err
			},
			wantPath: "/clans/%23ABC123/currentwar",
		},
		{
			name: "clan league group",
			call: func(c *Client) error {
				_, err := c.ClanLeagueGroup(ctx, "#ABC123")
				return err
			},
			wantPath: "/clans/%23ABC123/currentwar/leaguegroup",
		},
		{
			name: "clan league war",
			call: func(c *Client) error {
				_, err := c.ClanLeagueWar(ctx, "#ABC123")
				return err
			},
			wantPath: "/clanwarleagues/wars/%23ABC123",
		},
		{
			name: "leagues",
			call: func(c *Client) error {
				_, err := c.Leagues(ctx)
				return err
			},
			wantPath: "/leagues",
		},
		{
			name: "player lookup",
			call: func(c *Client) error {
				_, err := c.Player(ctx, "#ABC123")
				return err
			},
			wantPath: "/players/%23ABC123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newRecordingServer(t, `{}`)
			client := newTestClient(t, server.URL)

			require.NoError(t, tt.call(client))

			require.Len(t, server.requests, 1)
			assert.Equal(t, tt.wantPath, server.requests[0].URL.EscapedPath())
			assert.Empty(t, server.requests[0].URL.RawQuery)
		})
	}
}

func TestNoImplicitCaching(t *testing.T) {
	server := newRecordingServer(t, `{"tag":"#ABC123"}`)
	client := newTestClient(t, server.URL)

	ctx := context.Background()
	_, err := client.Clan(ctx, "#ABC123")
	require.NoError(t, err)
	_, err = client.Clan(ctx, "#ABC123")
	require.NoError(t, err)

	assert.Len(t, server.requests, 2, "identical calls must each hit the transport")
}

// TestRequestDefaultsPrecedence pins the documented merge order: construction
// defaults override per-call options, which override the base template. The
// defaults winning over call-specific values is surprising but is the
// contract; a change here is a breaking change, not a bug fix.
func TestRequestDefaultsPrecedence(t *testing.T) {
	server := newRecordingServer(t, `{}`)

	t.Run("defaults override base template header", func(t *testing.T) {
		client := newTestClient(t, server.URL, WithRequestDefaults(RequestOptions{
			Headers: map[string]string{"Authorization": "Bearer override-token"},
		}))

		server.requests = nil
		_, err := client.Leagues(context.Background())
		require.NoError(t, err)

		require.Len(t, server.requests, 1)
		assert.Equal(t, "Bearer override-token", server.requests[0].Header.Get("Authorization"))
	})

	t.Run("defaults override per-call query", func(t *testing.T) {
		client := newTestClient(t, server.URL, WithRequestDefaults(RequestOptions{
			Query: url.Values{"limit": {"5"}},
		}))

		server.requests = nil
		_, err := client.SearchClans().WithLimit(50).Fetch(context.Background())
		require.NoError(t, err)

		require.Len(t, server.requests, 1)
		assert.Equal(t, "5", server.requests[0].URL.Query().Get("limit"))
	})

	t.Run("per-call options override base template", func(t *testing.T) {
		client := newTestClient(t, server.URL)

		req, err := client.buildRequest(context.Background(), "/leagues", RequestOptions{
			Headers: map[string]string{"Accept": "application/xml"},
		})
		require.NoError(t, err)
		assert.Equal(t, "application/xml", req.Header.Get("Accept"))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"reason":"notFound"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.Clan(context.Background(), "#NOPE")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.True(t, apiErr.IsNotFound())
		assert.Contains(t, apiErr.Body, "notFound")
	})

	t.Run("classifiers", func(t *testing.T) {
		tests := []struct {
			code         int
			notFound     bool
			unauthorized bool
			throttled    bool
		}{
			{404, true, false, false},
			{401, false, true, false},
			{403, false, true, false},
			{429, false, false, true},
			{500, false, false, false},
		}

		for _, tt := range tests {
			err := &APIError{StatusCode: tt.code}
			assert.Equal(t, tt.notFound, err.IsNotFound())
			assert.Equal(t, tt.unauthorized, err.IsUnauthorized())
			assert.Equal(t, tt.throttled, err.IsThrottled())
		}
	})

	t.Run("invalid JSON body rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.Leagues(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})
}
