package httpclient

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-200 response
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

// Error returns the error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, url, message string) error {
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
		Message:    message,
	}
}

// StatusCode extracts the HTTP status of err, or 0 when err is not an HTTPError
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
