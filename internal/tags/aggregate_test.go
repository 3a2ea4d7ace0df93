package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	mood, era, genre, condition string
}

func (r record) TagField(key CategoryKey) string {
	switch key {
	case CategoryMood:
		return r.mood
	case CategoryEra:
		return r.era
	case CategoryGenre:
		return r.genre
	case CategoryCondition:
		return r.condition
	default:
		return ""
	}
}

func TestAggregate_CategoryOrderAndShape(t *testing.T) {
	t.Parallel()

	categories := Aggregate([]record{
		{mood: "#밝은", era: "#현대"},
	})

	require.Len(t, categories, 4)
	assert.Equal(t, CategoryMood, categories[0].Key)
	assert.Equal(t, "분위기", categories[0].Title)
	assert.Equal(t, MultiSelect, categories[0].Mode)
	assert.Equal(t, CategoryEra, categories[1].Key)
	assert.Equal(t, SingleSelect, categories[1].Mode)
	assert.Equal(t, CategoryGenre, categories[2].Key)
	assert.Equal(t, SingleSelect, categories[2].Mode)
	assert.Equal(t, CategoryCondition, categories[3].Key)
	assert.Equal(t, MultiSelect, categories[3].Mode)
}

func TestAggregate_EmptyCategoriesAreReturned(t *testing.T) {
	t.Parallel()

	categories := Aggregate([]record{
		{mood: "#밝은"},
	})

	genre, ok := categories.Find(CategoryGenre)
	require.True(t, ok)
	assert.Empty(t, genre.Tags)
	assert.NotNil(t, genre.Tags)

	nonEmpty := categories.NonEmpty()
	require.Len(t, nonEmpty, 1)
	assert.Equal(t, CategoryMood, nonEmpty[0].Key)
}

func TestAggregate_NoItems(t *testing.T) {
	t.Parallel()

	categories := Aggregate[record](nil)
	require.Len(t, categories, 4)
	for _, c := range categories {
		assert.Empty(t, c.Tags)
	}
	assert.Empty(t, categories.NonEmpty())
}

func TestAggregate_Ordering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []record
		key      CategoryKey
		expected []string
	}{
		{
			name: "era follows priority list",
			items: []record{
				{era: "#미래"}, {era: "#고대"}, {era: "#근대"},
			},
			key:      CategoryEra,
			expected: []string{"#고대", "#근대", "#미래"},
		},
		{
			name: "known era precedes unknown",
			items: []record{
				{era: "#기타"}, {era: "#고대"},
			},
			key:      CategoryEra,
			expected: []string{"#고대", "#기타"},
		},
		{
			name: "unknown era tags after every known tag",
			items: []record{
				{era: "#가상, #미래"}, {era: "#르네상스,#고대"},
			},
			key:      CategoryEra,
			expected: []string{"#고대", "#미래", "#가상", "#르네상스"},
		},
		{
			name: "full era list",
			items: []record{
				{era: "#현대,#중세"}, {era: "#미래, #근대, #고대"},
			},
			key:      CategoryEra,
			expected: []string{"#고대", "#중세", "#근대", "#현대", "#미래"},
		},
		{
			name: "mood is lexicographic and distinct",
			items: []record{
				{mood: "#차분한,#밝은"}, {mood: "#밝은, #공포"},
			},
			key:      CategoryMood,
			expected: []string{"#공포", "#밝은", "#차분한"},
		},
		{
			name: "unmarked tokens are ignored",
			items: []record{
				{genre: "jazz, #재즈, #클래식"},
			},
			key:      CategoryGenre,
			expected: []string{"#재즈", "#클래식"},
		},
		{
			name: "emoji sorts before fullwidth letters",
			items: []record{
				{mood: "#Ａ, #😀"}, {mood: "#가"},
			},
			key:      CategoryMood,
			expected: []string{"#가", "#😀", "#Ａ"},
		},
		{
			name: "condition is lexicographic",
			items: []record{
				{condition: "#카페"}, {condition: "#공부, #산책"},
			},
			key:      CategoryCondition,
			expected: []string{"#공부", "#산책", "#카페"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			category, ok := Aggregate(tt.items).Find(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.expected, category.Tags)
		})
	}
}

func TestPriorityCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	cmp := priorityCompare(DefaultEraOrder(), newKoreanCollator())
	tagList := []string{"#고대", "#미래", "#기타", "#가상", "#고대"}

	for _, a := range tagList {
		for _, b := range tagList {
			ab := cmp(a, b)
			ba := cmp(b, a)
			if a == b {
				assert.Zero(t, ab, "%s vs %s", a, b)
				continue
			}
			assert.NotZero(t, ab, "%s vs %s", a, b)
			assert.Equal(t, ab < 0, ba > 0, "antisymmetry for %s and %s", a, b)
		}
	}
}

func TestCompareUTF16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "#재즈", b: "#재즈", want: 0},
		{name: "prefix first", a: "#재", b: "#재즈", want: -1},
		{name: "hangul by code point", a: "#가", b: "#나", want: -1},
		{name: "surrogate before private use", a: "#😀", b: "#\ue000", want: -1},
		{name: "surrogate before fullwidth", a: "#Ａ", b: "#😀", want: 1},
		{name: "two emoji", a: "#😀", b: "#😁", want: -1},
		{name: "ascii before emoji", a: "#z", b: "#😀", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compareUTF16(tt.a, tt.b))
			assert.Equal(t, -tt.want, compareUTF16(tt.b, tt.a))
		})
	}
}

func TestAggregate_CustomDefinitions(t *testing.T) {
	t.Parallel()

	defs := []Definition{
		{Key: CategoryEra, Title: "era", Mode: SingleSelect, Priority: []string{"#b", "#a"}},
	}
	categories := Aggregate([]record{{era: "#a, #b, #c"}}, defs...)

	require.Len(t, categories, 1)
	assert.Equal(t, []string{"#b", "#a", "#c"}, categories[0].Tags)
}
