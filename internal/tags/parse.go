package tags

import "strings"

const (
	// Marker is the prefix carried by every tag that takes part in filtering
	Marker = "#"

	separator = ","
)

// Parse splits a comma-delimited tag field into trimmed, non-empty tokens.
// Order and duplicates are preserved.
func Parse(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	pieces := strings.Split(raw, separator)
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if tag := strings.TrimSpace(piece); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ParseMarked is Parse restricted to tokens starting with Marker.
func ParseMarked(raw string) []string {
	parsed := Parse(raw)
	out := parsed[:0]
	for _, tag := range parsed {
		if strings.HasPrefix(tag, Marker) {
			out = append(out, tag)
		}
	}
	return out
}
