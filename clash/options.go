package clash

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for custom
// transports or test doubles.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestDefaults sets headers and query parameters applied to every
// request. Defaults take precedence over per-call options, which take
// precedence over the built-in Accept/Authorization template; see
// Client.buildRequest for the full ordering.
func WithRequestDefaults(defaults RequestOptions) Option {
	return func(c *Client) {
		c.defaults = defaults
	}
}
