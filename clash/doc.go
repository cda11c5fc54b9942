// Package clash provides a client for the Clash of Clans REST API.
//
// The client covers clan, player, war, league and location endpoints, and two
// fluent query builders for clan search and location rankings. Responses are
// returned as opaque json.RawMessage values: the package builds URLs, attaches
// bearer-token authentication and reports transport or HTTP failures, but it
// never parses or validates response content. Pagination cursors (limit,
// after, before) pass through to the API unmodified.
//
// # Usage
//
// Create a client with an API token from https://developer.clashofclans.com:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := clash.NewClient("", token, logger,
//		clash.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	clan, err := client.Clan(ctx, "#2PP")
//
// Search for clans by chaining filter setters:
//
//	result, err := client.SearchClans().
//		WithName("the best clan").
//		WithMinMembers(10).
//		Fetch(ctx)
//
// Drill into location rankings:
//
//	top, err := client.Locations().WithID("32000007").ByPlayer().Fetch(ctx)
//
// # Error Handling
//
// Construction fails with ErrMissingToken when no token is supplied. Non-2xx
// responses surface as *APIError with the status code and raw body, plus
// classification helpers:
//
//	var apiErr *clash.APIError
//	if errors.As(err, &apiErr) && apiErr.IsThrottled() {
//		// back off
//	}
//
// The client itself performs no retries, caching or rate limiting.
package clash
