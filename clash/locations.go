package clash

import (
	"context"
	"encoding/json"
)

// LocationsQuery is the entry point of the location lookup chain. Fetch lists
// all locations; WithID narrows to a single location. Every step of the chain
// returns an independently-parameterized value, so one query may be branched
// into several chains without the branches affecting each other.
type LocationsQuery struct {
	client *Client
}

// LocationQuery addresses a single location. Fetch retrieves it; ByClan and
// ByPlayer drill into its ranking sub-resources.
type LocationQuery struct {
	client *Client
	id     string
}

// RankingQuery addresses one leaderboard of a location, either clans or
// players.
type RankingQuery struct {
	client *Client
	id     string
	kind   string
}

// Locations starts a location lookup chain.
func (c *Client) Locations() LocationsQuery {
	return LocationsQuery{client: c}
}

// Fetch lists all locations.
func (q LocationsQuery) Fetch(ctx context.Context) (json.RawMessage, error) {
	return q.client.do(ctx, "/locations", RequestOptions{})
}

// WithID selects a single location by identifier.
func (q LocationsQuery) WithID(locationID string) LocationQuery {
	return LocationQuery{client: q.client, id: locationID}
}

// Fetch retrieves the selected location.
func (q LocationQuery) Fetch(ctx context.Context) (json.RawMessage, error) {
	return q.client.do(ctx, "/locations/"+encodeTag(q.id), RequestOptions{})
}

// ByClan selects the clan leaderboard of the location.
func (q LocationQuery) ByClan() RankingQuery {
	return RankingQuery{client: q.client, id: q.id, kind: "clans"}
}

// ByPlayer selects the player leaderboard of the location.
func (q LocationQuery) ByPlayer() RankingQuery {
	return RankingQuery{client: q.client, id: q.id, kind: "players"}
}

// Fetch retrieves the selected leaderboard.
func (q RankingQuery) Fetch(ctx context.Context) (json.RawMessage, error) {
	return q.client.do(ctx, "/locations/"+encodeTag(q.id)+"/rankings/"+q.kind, RequestOptions{})
}
