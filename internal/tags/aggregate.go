package tags

import (
	"cmp"
	"slices"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tagged is implemented by records that carry one raw tag field per category
type Tagged interface {
	TagField(key CategoryKey) string
}

// Aggregate collects the distinct marker-prefixed tags of items into one
// Category per definition, in definition order. Categories without tags are
// returned with an empty tag list. When no definitions are given,
// DefaultDefinitions is used.
func Aggregate[T Tagged](items []T, defs ...Definition) Categories {
	if len(defs) == 0 {
		defs = DefaultDefinitions()
	}

	seen := make([]map[string]struct{}, len(defs))
	for i := range defs {
		seen[i] = make(map[string]struct{})
	}

	for _, item := range items {
		for i, def := range defs {
			for _, tag := range ParseMarked(item.TagField(def.Key)) {
				seen[i][tag] = struct{}{}
			}
		}
	}

	collator := newKoreanCollator()

	out := make(Categories, 0, len(defs))
	for i, def := range defs {
		tagList := make([]string, 0, len(seen[i]))
		for tag := range seen[i] {
			tagList = append(tagList, tag)
		}

		if len(def.Priority) > 0 {
			slices.SortFunc(tagList, priorityCompare(def.Priority, collator))
		} else {
			slices.SortFunc(tagList, compareUTF16)
		}

		out = append(out, Category{
			Key:   def.Key,
			Title: def.Title,
			Mode:  def.Mode,
			Tags:  tagList,
		})
	}
	return out
}

// priorityCompare orders listed tags by their index and places them before
// unlisted tags. Unlisted tags are ordered by the collator, then by
// compareUTF16.
func priorityCompare(priority []string, collator *collate.Collator) func(a, b string) int {
	rank := make(map[string]int, len(priority))
	for i, tag := range priority {
		if _, ok := rank[tag]; !ok {
			rank[tag] = i
		}
	}

	return func(a, b string) int {
		ra, aKnown := rank[a]
		rb, bKnown := rank[b]
		switch {
		case aKnown && bKnown:
			return ra - rb
		case aKnown:
			return -1
		case bKnown:
			return 1
		}
		if c := collator.CompareString(a, b); c != 0 {
			return c
		}
		return compareUTF16(a, b)
	}
}

// compareUTF16 orders strings by their UTF-16 code units, the default sort
// order of the web client. It differs from byte order only when a
// supplementary rune (emoji) meets a rune in U+E000 to U+FFFF: the
// surrogate pair sorts first.
func compareUTF16(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			return cmp.Or(cmp.Compare(firstUnit(ra), firstUnit(rb)), cmp.Compare(ra, rb))
		}
		if ra == utf8.RuneError {
			if c := cmp.Compare(a[:na], b[:nb]); c != 0 {
				return c
			}
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

// firstUnit is the leading UTF-16 code unit of r
func firstUnit(r rune) rune {
	if r >= 0x10000 {
		hi, _ := utf16.EncodeRune(r)
		return hi
	}
	return r
}

// newKoreanCollator returns a fresh collator; collate.Collator is not safe
// for concurrent use.
func newKoreanCollator() *collate.Collator {
	return collate.New(language.Korean)
}
