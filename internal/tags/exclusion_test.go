package tags

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedKeys(m map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(m))
}

func TestExclusionPolicy_DisabledTags(t *testing.T) {
	t.Parallel()

	policy := DefaultExclusionPolicy()

	tests := []struct {
		name     string
		active   Selection
		key      CategoryKey
		expected []string
	}{
		{
			name:     "bright disables three tags",
			active:   Selection{"#밝은"},
			key:      CategoryMood,
			expected: []string{"#공포", "#긴장되는", "#어두운"},
		},
		{
			name:     "dark only disables bright",
			active:   Selection{"#어두운"},
			key:      CategoryMood,
			expected: []string{"#밝은"},
		},
		{
			name:     "calm disables grand and lively",
			active:   Selection{"#차분한"},
			key:      CategoryMood,
			expected: []string{"#웅장한", "#활기찬"},
		},
		{
			name:     "union over active tags",
			active:   Selection{"#어두운", "#웅장한"},
			key:      CategoryMood,
			expected: []string{"#밝은", "#차분한"},
		},
		{
			name:     "bright and calm are independent groups",
			active:   Selection{"#밝은", "#차분한"},
			key:      CategoryMood,
			expected: []string{"#공포", "#긴장되는", "#어두운", "#웅장한", "#활기찬"},
		},
		{
			name:     "other categories are never restricted",
			active:   Selection{"#밝은"},
			key:      CategoryEra,
			expected: []string{},
		},
		{
			name:     "tags without entries disable nothing",
			active:   Selection{"#잔잔한", "#현대"},
			key:      CategoryMood,
			expected: []string{},
		},
		{
			name:     "active tags are never reported",
			active:   Selection{"#밝은", "#어두운"},
			key:      CategoryMood,
			expected: []string{"#공포", "#긴장되는"},
		},
		{
			name:     "empty selection",
			active:   Selection{},
			key:      CategoryMood,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := policy.DisabledTags(tt.active, tt.key)
			assert.ElementsMatch(t, tt.expected, sortedKeys(got))
		})
	}
}

func TestDefaultMoodExclusions_IsAsymmetric(t *testing.T) {
	t.Parallel()

	table := DefaultMoodExclusions()
	require.Len(t, table, 7)
	assert.ElementsMatch(t, []string{"#어두운", "#공포", "#긴장되는"}, table["#밝은"])
	assert.Equal(t, []string{"#밝은"}, table["#어두운"])
	assert.NotContains(t, table["#어두운"], "#공포")
}

func TestExclusionPolicy_IsDisabled(t *testing.T) {
	t.Parallel()

	policy := DefaultExclusionPolicy()
	active := Selection{"#밝은"}

	assert.True(t, policy.IsDisabled(active, "#어두운", CategoryMood))
	assert.False(t, policy.IsDisabled(active, "#밝은", CategoryMood))
	assert.False(t, policy.IsDisabled(active, "#차분한", CategoryMood))
	assert.False(t, policy.IsDisabled(active, "#어두운", CategoryEra))
}

func TestExclusionPolicy_Describe(t *testing.T) {
	t.Parallel()

	policy := DefaultExclusionPolicy()
	categories := Categories{
		{Key: CategoryMood, Title: "분위기", Mode: MultiSelect, Tags: []string{"#밝은", "#어두운", "#차분한"}},
		{Key: CategoryEra, Title: "시대", Mode: SingleSelect, Tags: []string{"#고대", "#현대"}},
	}

	t.Run("nil available marks everything available", func(t *testing.T) {
		t.Parallel()

		states := policy.Describe(categories, Selection{"#밝은"}, nil)
		require.Len(t, states, 2)

		mood := states[0].Tags
		assert.Equal(t, TagState{Tag: "#밝은", Selected: true, Available: true}, mood[0])
		assert.Equal(t, TagState{Tag: "#어두운", Available: true, Disabled: true}, mood[1])
		assert.Equal(t, TagState{Tag: "#차분한", Available: true}, mood[2])
	})

	t.Run("unavailable tags are disabled unless selected", func(t *testing.T) {
		t.Parallel()

		available := map[string]struct{}{"#밝은": {}, "#현대": {}}
		states := policy.Describe(categories, Selection{"#고대"}, available)

		era := states[1].Tags
		assert.Equal(t, TagState{Tag: "#고대", Selected: true}, era[0])
		assert.Equal(t, TagState{Tag: "#현대", Available: true}, era[1])

		mood := states[0].Tags
		assert.False(t, mood[0].Disabled)
		assert.True(t, mood[2].Disabled)
	})
}
