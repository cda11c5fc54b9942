package clash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		fetch    func(*Client) error
		wantPath string
	}{
		{
			name: "list all locations",
			fetch: func(c *Client) error {
				_, err := c.Locations().Fetch(ctx)
				return err
			},
			wantPath: "/locations",
		},
		{
			name: "single location",
			fetch: func(c *Client) error {
				_, err := c.Locations().WithID("L1").Fetch(ctx)
				return err
			},
			wantPath: "/locations/L1",
		},
		{
			name: "clan rankings",
			fetch: func(c *Client) error {
				_, err := c.Locations().WithID("L1").ByClan().Fetch(ctx)
				return err
			},
			wantPath: "/locations/L1/rankings/clans",
		},
		{
			name: "player rankings",
			fetch: func(c *Client) error {
				_, err := c.Locations().WithID("L1").ByPlayer().Fetch(ctx)
				return err
			},
			wantPath: "/locations/L1/rankings/players",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newRecordingServer(t, `{"items":[]}`)
			client := newTestClient(t, server.URL)

			require.NoError(t, tt.fetch(client))

			require.Len(t, server.requests, 1)
			assert.Equal(t, tt.wantPath, server.requests[0].URL.EscapedPath())
		})
	}
}

// TestLocationBranchIndependence verifies that selecting a ranking kind does
// not mutate the location query it came from: two branches off the same
// LocationQuery address different leaderboards.
func TestLocationBranchIndependence(t *testing.T) {
	server := newRecordingServer(t, `{"items":[]}`)
	client := newTestClient(t, server.URL)

	location := client.Locations().WithID("L1")
	clans := location.ByClan()
	players := location.ByPlayer()

	ctx := context.Background()
	_, err := clans.Fetch(ctx)
	require.NoError(t, err)
	_, err = players.Fetch(ctx)
	require.NoError(t, err)
	_, err = clans.Fetch(ctx)
	require.NoError(t, err)

	require.Len(t, server.requests, 3)
	assert.Equal(t, "/locations/L1/rankings/clans", server.requests[0].URL.Path)
	assert.Equal(t, "/locations/L1/rankings/players", server.requests[1].URL.Path)
	assert.Equal(t, "/locations/L1/rankings/clans", server.requests[2].URL.Path)
}
