package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNameFilter_ShouldInclude(t *testing.T) {
	t.Parallel()

	filter := NewDefaultNameFilter()

	tests := []struct {
		name       string
		playlistID string
		include    []string
		exclude    []string
		expected   bool
		reason     string
	}{
		{
			name:       "no filters",
			playlistID: "jazz-cafe",
			expected:   true,
			reason:     "no filters means default include",
		},
		{
			name:       "exact include",
			playlistID: "jazz-cafe",
			include:    []string{"jazz-cafe"},
			expected:   true,
			reason:     "exact match should be included",
		},
		{
			name:       "glob include",
			playlistID: "jazz-cafe",
			include:    []string{"jazz-*"},
			expected:   true,
			reason:     "glob match should be included",
		},
		{
			name:       "glob include no match",
			playlistID: "classic-dawn",
			include:    []string{"jazz-*"},
			expected:   false,
			reason:     "non matching id should be excluded",
		},
		{
			name:       "star matches across slashes",
			playlistID: "season/1/jazz",
			include:    []string{"season/*"},
			expected:   true,
			reason:     "star should cross path separators",
		},
		{
			name:       "question mark matches one character",
			playlistID: "p10",
			include:    []string{"p?"},
			expected:   false,
			reason:     "question mark is a single character",
		},
		{
			name:       "exclude precedence",
			playlistID: "jazz-draft",
			include:    []string{"jazz-*"},
			exclude:    []string{"*-draft"},
			expected:   false,
			reason:     "exclude should take precedence",
		},
		{
			name:       "invalid pattern",
			playlistID: "jazz",
			include:    []string{"[jazz"},
			expected:   false,
			reason:     "malformed pattern should exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, reason := filter.ShouldInclude(tt.playlistID, tt.include, tt.exclude)
			assert.Equal(t, tt.expected, result, tt.reason)
			assert.NotEmpty(t, reason)
		})
	}
}
