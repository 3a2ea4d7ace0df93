package config

import (
	"slices"

	"github.com/stacklok/readmode-server/internal/tags"
)

// TagDefinitions returns the category definitions with the configured era
// order applied
func (c *Config) TagDefinitions() []tags.Definition {
	defs := tags.DefaultDefinitions()
	if c == nil || c.Taxonomy == nil || len(c.Taxonomy.EraOrder) == 0 {
		return defs
	}
	for i := range defs {
		if defs[i].Key == tags.CategoryEra {
			defs[i].Priority = slices.Clone(c.Taxonomy.EraOrder)
		}
	}
	return defs
}

// ExclusionPolicy returns the mood exclusion policy, using the configured
// table when one is present
func (c *Config) ExclusionPolicy() tags.ExclusionPolicy {
	policy := tags.DefaultExclusionPolicy()
	if c == nil || c.Taxonomy == nil || len(c.Taxonomy.Exclusions) == 0 {
		return policy
	}
	table := make(tags.ExclusionTable, len(c.Taxonomy.Exclusions))
	for tag, excluded := range c.Taxonomy.Exclusions {
		table[tag] = slices.Clone(excluded)
	}
	policy.Table = table
	return policy
}
