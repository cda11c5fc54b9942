package clash

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingToken indicates no API token was supplied at construction.
	ErrMissingToken = errors.New("API token is required")
)

// APIError represents a non-2xx response from the Clash of Clans API. The body
// is carried verbatim; the client performs no interpretation of it.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("clash API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an invalid or rejected token
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsThrottled checks if the error indicates the request was rate limited
func (e *APIError) IsThrottled() bool {
	return e.StatusCode == 429
}
