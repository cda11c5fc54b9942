package clash

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// ClanSearch accumulates clan-search filter criteria across chained calls and
// issues a single request on Fetch. Each call to Client.SearchClans returns an
// independent accumulator; a single ClanSearch is not safe for concurrent use.
//
// The API requires at least one filter, and a name filter of at least three
// characters. Neither is validated client-side; the server rejects requests
// that violate them.
type ClanSearch struct {
	client *Client
	query  url.Values
}

// SearchClans starts a clan search. Chain With* setters to add filter
// criteria, then call Fetch to issue the request.
func (c *Client) SearchClans() *ClanSearch {
	return &ClanSearch{
		client: c,
		query:  url.Values{},
	}
}

// WithName filters by clan name.
func (s *ClanSearch) WithName(name string) *ClanSearch {
	s.query.Set("name", name)
	return s
}

// WithWarFrequency filters by war frequency.
func (s *ClanSearch) WithWarFrequency(frequency string) *ClanSearch {
	s.query.Set("warFrequency", frequency)
	return s
}

// WithLocationID filters by location identifier.
func (s *ClanSearch) WithLocationID(locationID int) *ClanSearch {
	s.query.Set("locationId", strconv.Itoa(locationID))
	return s
}

// WithMinMembers filters by minimum member count.
func (s *ClanSearch) WithMinMembers(minMembers int) *ClanSearch {
	s.query.Set("minMembers", strconv.Itoa(minMembers))
	return s
}

// WithMaxMembers filters by maximum member count.
func (s *ClanSearch) WithMaxMembers(maxMembers int) *ClanSearch {
	s.query.Set("maxMembers", strconv.Itoa(maxMembers))
	return s
}

// WithMinClanPoints filters by minimum clan points.
func (s *ClanSearch) WithMinClanPoints(minClanPoints int) *ClanSearch {
	s.query.Set("minClanPoints", strconv.Itoa(minClanPoints))
	return s
}

// WithMinClanLevel filters by minimum clan level.
func (s *ClanSearch) WithMinClanLevel(minClanLevel int) *ClanSearch {
	s.query.Set("minClanLevel", strconv.Itoa(minClanLevel))
	return s
}

// WithLimit caps the number of items returned.
func (s *ClanSearch) WithLimit(limit int) *ClanSearch {
	s.query.Set("limit", strconv.Itoa(limit))
	return s
}

// WithAfter requests items after the given paging cursor.
func (s *ClanSearch) WithAfter(cursor string) *ClanSearch {
	s.query.Set("after", cursor)
	return s
}

// WithBefore requests items before the given paging cursor.
func (s *ClanSearch) WithBefore(cursor string) *ClanSearch {
	s.query.Set("before", cursor)
	return s
}

// Fetch issues a single GET /clans with the accumulated criteria. Setting the
// same field multiple times before Fetch keeps the last value.
func (s *ClanSearch) Fetch(ctx context.Context) (json.RawMessage, error) {
	return s.client.do(ctx, "/clans", RequestOptions{Query: s.query})
}
