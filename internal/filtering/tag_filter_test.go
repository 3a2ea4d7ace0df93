package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultTagFilter(t *testing.T) {
	t.Parallel()

	filter := NewDefaultTagFilter()
	assert.NotNil(t, filter)
	assert.IsType(t, &DefaultTagFilter{}, filter)
}

func TestDefaultTagFilter_ShouldInclude(t *testing.T) {
	t.Parallel()

	filter := NewDefaultTagFilter()

	tests := []struct {
		name     string
		tags     []string
		include  []string
		exclude  []string
		expected bool
		reason   string
	}{
		{
			name:     "no filters - should include",
			tags:     []string{"#재즈", "#현대"},
			expected: true,
			reason:   "no filters means default include",
		},
		{
			name:     "nil tags with no filters",
			tags:     nil,
			expected: true,
			reason:   "nil tags with no filters should include",
		},
		{
			name:     "include match",
			tags:     []string{"#재즈", "#현대"},
			include:  []string{"#현대"},
			expected: true,
			reason:   "matching tag should be included",
		},
		{
			name:     "no include match",
			tags:     []string{"#재즈"},
			include:  []string{"#클래식", "#록"},
			expected: false,
			reason:   "no matching include tag should exclude",
		},
		{
			name:     "empty tags with include",
			tags:     []string{},
			include:  []string{"#재즈"},
			expected: false,
			reason:   "empty tags should not match include filters",
		},
		{
			name:     "exclude match",
			tags:     []string{"#공포", "#어두운"},
			exclude:  []string{"#공포"},
			expected: false,
			reason:   "matching exclude tag should exclude",
		},
		{
			name:     "no exclude match",
			tags:     []string{"#밝은"},
			exclude:  []string{"#공포"},
			expected: true,
			reason:   "no matching exclude tag should include",
		},
		{
			name:     "exclude takes precedence",
			tags:     []string{"#재즈", "#공포"},
			include:  []string{"#재즈"},
			exclude:  []string{"#공포"},
			expected: false,
			reason:   "exclude should take precedence over include",
		},
		{
			name:     "marker is part of the tag",
			tags:     []string{"#재즈"},
			include:  []string{"재즈"},
			expected: false,
			reason:   "tags are compared exactly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, reason := filter.ShouldInclude(tt.tags, tt.include, tt.exclude)
			assert.Equal(t, tt.expected, result, tt.reason)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestMatchesAll(t *testing.T) {
	t.Parallel()

	playlistTags := []string{"#재즈", "#현대", "#밝은", "#잔잔한"}

	assert.True(t, MatchesAll(playlistTags, nil))
	assert.True(t, MatchesAll(playlistTags, []string{"#밝은", "#현대"}))
	assert.False(t, MatchesAll(playlistTags, []string{"#밝은", "#고대"}))
	assert.False(t, MatchesAll(nil, []string{"#밝은"}))
}
