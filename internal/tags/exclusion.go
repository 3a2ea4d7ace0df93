package tags

// ExclusionTable maps a tag to the tags it disables while it is active.
// Entries are applied as declared and are not made symmetric.
type ExclusionTable map[string][]string

// DefaultMoodExclusions returns the built-in mood exclusion table
func DefaultMoodExclusions() ExclusionTable {
	return ExclusionTable{
		"#밝은":   {"#어두운", "#공포", "#긴장되는"},
		"#어두운":  {"#밝은"},
		"#공포":   {"#밝은"},
		"#긴장되는": {"#밝은"},
		"#차분한":  {"#웅장한", "#활기찬"},
		"#웅장한":  {"#차분한"},
		"#활기찬":  {"#차분한"},
	}
}

// ExclusionPolicy applies an ExclusionTable to the tags of a single category
type ExclusionPolicy struct {
	Scope CategoryKey
	Table ExclusionTable
}

// DefaultExclusionPolicy applies DefaultMoodExclusions to the mood category
func DefaultExclusionPolicy() ExclusionPolicy {
	return ExclusionPolicy{
		Scope: CategoryMood,
		Table: DefaultMoodExclusions(),
	}
}

// DisabledTags returns the tags of category key that the active selection
// disables. It is empty for categories outside the policy scope. Active tags
// are never reported, so a selected tag can always be deselected.
func (p ExclusionPolicy) DisabledTags(active Selection, key CategoryKey) map[string]struct{} {
	disabled := make(map[string]struct{})
	if key != p.Scope {
		return disabled
	}

	for _, tag := range active {
		for _, excluded := range p.Table[tag] {
			if !active.Contains(excluded) {
				disabled[excluded] = struct{}{}
			}
		}
	}
	return disabled
}

// IsDisabled reports whether tag of category key cannot currently be selected
func (p ExclusionPolicy) IsDisabled(active Selection, tag string, key CategoryKey) bool {
	if active.Contains(tag) {
		return false
	}
	_, ok := p.DisabledTags(active, key)[tag]
	return ok
}
