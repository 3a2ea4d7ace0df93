package httpclient

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	err := NewHTTPError(http.StatusNotFound, "https://example.com/rest/v1/videos", "404 Not Found")
	assert.Equal(t, "HTTP 404 for URL https://example.com/rest/v1/videos: 404 Not Found", err.Error())
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: 0},
		{name: "plain error", err: fmt.Errorf("boom"), expected: 0},
		{name: "http error", err: NewHTTPError(http.StatusBadGateway, "u", "m"), expected: http.StatusBadGateway},
		{
			name:     "wrapped http error",
			err:      fmt.Errorf("fetch videos: %w", NewHTTPError(http.StatusForbidden, "u", "m")),
			expected: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryableStatus(http.StatusTooManyRequests))
	assert.True(t, IsRetryableStatus(http.StatusInternalServerError))
	assert.True(t, IsRetryableStatus(http.StatusGatewayTimeout))
	assert.False(t, IsRetryableStatus(http.StatusBadRequest))
	assert.False(t, IsRetryableStatus(http.StatusNotFound))
}
