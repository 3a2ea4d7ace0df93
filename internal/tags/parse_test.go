package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			raw:      "   \t ",
			expected: []string{},
		},
		{
			name:     "only separators and blanks",
			raw:      "  ,  ,",
			expected: []string{},
		},
		{
			name:     "preserves duplicates and order",
			raw:      "#A, #B ,#A",
			expected: []string{"#A", "#B", "#A"},
		},
		{
			name:     "keeps unmarked tokens",
			raw:      "jazz, #재즈",
			expected: []string{"jazz", "#재즈"},
		},
		{
			name:     "stray commas are dropped",
			raw:      ",,#밝은,, #현대 ,",
			expected: []string{"#밝은", "#현대"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Parse(tt.raw))
		})
	}
}

func TestParseMarked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "drops tokens without marker",
			raw:      "jazz, #재즈, piano ,#피아노",
			expected: []string{"#재즈", "#피아노"},
		},
		{
			name:     "marker must be a prefix",
			raw:      "a#b, #c",
			expected: []string{"#c"},
		},
		{
			name:     "no marked tokens",
			raw:      "a, b",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseMarked(tt.raw))
		})
	}
}
