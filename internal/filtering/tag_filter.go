package filtering

import (
	"fmt"
	"slices"
)

// TagFilter handles tag-based filtering using exact string matching
type TagFilter interface {
	// ShouldInclude determines if a playlist with the given tags should be
	// kept based on include/exclude tag lists.
	// Returns (shouldInclude bool, reason string)
	ShouldInclude(tags []string, include, exclude []string) (bool, string)
}

// DefaultTagFilter implements tag filtering using exact string matching
type DefaultTagFilter struct{}

// NewDefaultTagFilter creates a new DefaultTagFilter
func NewDefaultTagFilter() *DefaultTagFilter {
	return &DefaultTagFilter{}
}

// ShouldInclude drops a playlist carrying any excluded tag. When include tags
// are given, at least one of them must be carried.
func (*DefaultTagFilter) ShouldInclude(tags []string, include, exclude []string) (bool, string) {
	for _, excludeTag := range exclude {
		if slices.Contains(tags, excludeTag) {
			return false, fmt.Sprintf("excluded by tag '%s'", excludeTag)
		}
	}

	if len(include) > 0 {
		for _, includeTag := range include {
			if slices.Contains(tags, includeTag) {
				return true, fmt.Sprintf("included by tag '%s'", includeTag)
			}
		}
		return false, fmt.Sprintf("no matching tags found in include list %v (playlist tags: %v)", include, tags)
	}

	if len(exclude) > 0 {
		return true, fmt.Sprintf("no matching tags in exclude list %v (playlist tags: %v)", exclude, tags)
	}
	return true, "no tag filters specified"
}

// MatchesAll reports whether tags carries every tag in required.
// An empty required list matches everything.
func MatchesAll(tags []string, required []string) bool {
	for _, tag := range required {
		if !slices.Contains(tags, tag) {
			return false
		}
	}
	return true
}
