package tags

import (
	"slices"
	"strings"
)

// Selection is the ordered set of active tags. Category membership is not
// stored; a Selection is only ever changed through the methods below, which
// return a new value and leave the receiver untouched.
type Selection []string

// NewSelection builds a selection from tags, dropping blanks and duplicates
func NewSelection(tagList ...string) Selection {
	out := make(Selection, 0, len(tagList))
	for _, tag := range tagList {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Contains reports whether tag is active
func (s Selection) Contains(tag string) bool {
	return slices.Contains(s, tag)
}

// IsEmpty reports whether no tag is active
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Toggle deselects tag when it is active. Otherwise it selects tag following
// the category's mode: MultiSelect appends it, SingleSelect first drops every
// active tag of the category.
//
// Toggle does not consult any exclusion policy; callers reject disabled tags
// before calling it.
func (s Selection) Toggle(tag string, category Category) Selection {
	if s.Contains(tag) {
		return s.without(func(t string) bool { return t == tag })
	}

	next := s
	if category.Mode == SingleSelect {
		next = s.without(category.Contains)
	}

	out := make(Selection, 0, len(next)+1)
	out = append(out, next...)
	return append(out, tag)
}

// ClearCategory drops every active tag that belongs to category
func (s Selection) ClearCategory(category Category) Selection {
	return s.without(category.Contains)
}

// ClearAll returns an empty selection
func (Selection) ClearAll() Selection {
	return Selection{}
}

func (s Selection) without(drop func(string) bool) Selection {
	out := make(Selection, 0, len(s))
	for _, t := range s {
		if !drop(t) {
			out = append(out, t)
		}
	}
	return out
}
