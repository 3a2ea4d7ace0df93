package tags

import (
	"fmt"
	"slices"
)

// CategoryKey identifies one of the four fixed tag categories
type CategoryKey string

const (
	// CategoryMood groups tags describing the atmosphere of a playlist
	CategoryMood CategoryKey = "mood"
	// CategoryEra groups tags describing the historical period
	CategoryEra CategoryKey = "era"
	// CategoryGenre groups tags describing the genre
	CategoryGenre CategoryKey = "genre"
	// CategoryCondition groups tags describing the listening environment
	CategoryCondition CategoryKey = "condition"
)

// AllCategoryKeys returns the category keys in display order
func AllCategoryKeys() []CategoryKey {
	return []CategoryKey{CategoryMood, CategoryEra, CategoryGenre, CategoryCondition}
}

// ParseCategoryKey converts a string into a known CategoryKey
func ParseCategoryKey(s string) (CategoryKey, error) {
	key := CategoryKey(s)
	if !slices.Contains(AllCategoryKeys(), key) {
		return "", fmt.Errorf("unknown tag category %q", s)
	}
	return key, nil
}

// SelectionMode controls how selecting a tag affects other tags of its category
type SelectionMode int

const (
	// MultiSelect allows any number of tags of the category to be active
	MultiSelect SelectionMode = iota
	// SingleSelect allows at most one tag of the category to be active
	SingleSelect
)

func (m SelectionMode) String() string {
	switch m {
	case MultiSelect:
		return "multi"
	case SingleSelect:
		return "single"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// MarshalText encodes the mode as "multi" or "single"
func (m SelectionMode) MarshalText() ([]byte, error) {
	switch m {
	case MultiSelect, SingleSelect:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("invalid selection mode %d", int(m))
	}
}

// UnmarshalText decodes "multi" or "single"
func (m *SelectionMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "multi":
		*m = MultiSelect
	case "single":
		*m = SingleSelect
	default:
		return fmt.Errorf("invalid selection mode %q", string(text))
	}
	return nil
}

// Definition describes a category: how it is titled, how its tags are
// selected and, optionally, the priority list used to order its tags.
type Definition struct {
	Key      CategoryKey
	Title    string
	Mode     SelectionMode
	Priority []string
}

// DefaultEraOrder is the chronological order of the known era tags
func DefaultEraOrder() []string {
	return []string{"#고대", "#중세", "#근대", "#현대", "#미래"}
}

// DefaultDefinitions returns the built-in category definitions in display order
func DefaultDefinitions() []Definition {
	return []Definition{
		{Key: CategoryMood, Title: "분위기", Mode: MultiSelect},
		{Key: CategoryEra, Title: "시대", Mode: SingleSelect, Priority: DefaultEraOrder()},
		{Key: CategoryGenre, Title: "장르", Mode: SingleSelect},
		{Key: CategoryCondition, Title: "환경", Mode: MultiSelect},
	}
}

// Category is an aggregated category with its ordered, distinct tags
type Category struct {
	Key   CategoryKey   `json:"key"`
	Title string        `json:"title"`
	Mode  SelectionMode `json:"mode"`
	Tags  []string      `json:"tags"`
}

// Contains reports whether tag belongs to the category
func (c Category) Contains(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// IsEmpty reports whether the category has no tags
func (c Category) IsEmpty() bool {
	return len(c.Tags) == 0
}

// Categories is an ordered list of categories
type Categories []Category

// Find returns the category with the given key
func (cs Categories) Find(key CategoryKey) (Category, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// NonEmpty returns the categories that have at least one tag.
// Rendering layers use it to hide empty categories.
func (cs Categories) NonEmpty() Categories {
	out := make(Categories, 0, len(cs))
	for _, c := range cs {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}
