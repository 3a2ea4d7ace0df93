package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validateSyncPolicy(c.SyncPolicy); err != nil {
		return err
	}

	if err := validateSourceTypeCount(&c.Source); err != nil {
		return err
	}

	if err := validateSourceSpecificConfig(&c.Source); err != nil {
		return err
	}

	if err := validateTaxonomy(c.Taxonomy); err != nil {
		return err
	}

	if err := validateRecent(c.Recent); err != nil {
		return err
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}

func validateSyncPolicy(policy *SyncPolicyConfig) error {
	if policy == nil || policy.Interval == "" {
		return nil
	}

	interval, err := time.ParseDuration(policy.Interval)
	if err != nil {
		return fmt.Errorf("syncPolicy.interval must be a valid duration (e.g., '30m', '1h'): %w", err)
	}
	if interval <= 0 {
		return fmt.Errorf("syncPolicy.interval must be positive, got %s", policy.Interval)
	}
	return nil
}

// validateSourceTypeCount ensures exactly one source type is configured
func validateSourceTypeCount(source *SourceConfig) error {
	configCount := 0
	if source.File != nil {
		configCount++
	}
	if source.API != nil {
		configCount++
	}
	if source.Database != nil {
		configCount++
	}

	if configCount == 0 {
		return fmt.Errorf("source: one of file, api, or database configuration must be specified")
	}
	if configCount > 1 {
		return fmt.Errorf("source: only one of file, api, or database configuration may be specified")
	}
	return nil
}

func validateSourceSpecificConfig(source *SourceConfig) error {
	switch {
	case source.File != nil:
		return validateFileConfig(source.File, source.Format)
	case source.API != nil:
		return validateAPIConfig(source.API, source.Format)
	case source.Database != nil:
		return validateDatabaseConfig(source.Database, source.Format)
	}
	return nil
}

func validateFileConfig(file *FileConfig, format string) error {
	if file.Path == "" {
		return fmt.Errorf("source.file.path is required")
	}
	if format != "" && format != SourceFormatJSON && format != SourceFormatYAML {
		return fmt.Errorf("source.format must be %s or %s, got %s", SourceFormatJSON, SourceFormatYAML, format)
	}
	return nil
}

func validateAPIConfig(api *APIConfig, format string) error {
	if api.Endpoint == "" {
		return fmt.Errorf("source.api.endpoint is required")
	}
	u, err := url.Parse(api.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source.api.endpoint must be an absolute http(s) URL, got %q", api.Endpoint)
	}
	if format != "" && format != SourceFormatJSON {
		return fmt.Errorf("source.format must be empty or %s when using api, got %s", SourceFormatJSON, format)
	}
	if api.Timeout != "" {
		if _, err := time.ParseDuration(api.Timeout); err != nil {
			return fmt.Errorf("source.api.timeout must be a valid duration: %w", err)
		}
	}
	return nil
}

func validateDatabaseConfig(db *DatabaseConfig, format string) error {
	if format != "" {
		return fmt.Errorf("source.format is not supported for database sources")
	}
	if db.Host == "" {
		return fmt.Errorf("source.database.host is required")
	}
	if db.Port <= 0 {
		return fmt.Errorf("source.database.port is required")
	}
	if db.User == "" {
		return fmt.Errorf("source.database.user is required")
	}
	if db.Database == "" {
		return fmt.Errorf("source.database.database is required")
	}
	return nil
}

func validateTaxonomy(taxonomy *TaxonomyConfig) error {
	if taxonomy == nil {
		return nil
	}
	seen := make(map[string]bool, len(taxonomy.EraOrder))
	for i, tag := range taxonomy.EraOrder {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("taxonomy.eraOrder[%d] cannot be empty", i)
		}
		if seen[tag] {
			return fmt.Errorf("taxonomy.eraOrder[%d]: duplicate tag '%s'", i, tag)
		}
		seen[tag] = true
	}
	for tag, excluded := range taxonomy.Exclusions {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("taxonomy.exclusions: tag cannot be empty")
		}
		for _, other := range excluded {
			if other == tag {
				return fmt.Errorf("taxonomy.exclusions: tag '%s' cannot exclude itself", tag)
			}
		}
	}
	return nil
}

func validateRecent(recent *RecentConfig) error {
	if recent == nil {
		return nil
	}
	switch recent.Storage {
	case "", RecentStorageMemory, RecentStorageFile, RecentStorageBadger:
	default:
		return fmt.Errorf("recent.storage must be one of %s, %s or %s, got %s",
			RecentStorageMemory, RecentStorageFile, RecentStorageBadger, recent.Storage)
	}
	if recent.Path != "" && !filepath.IsAbs(recent.Path) && !filepath.IsLocal(filepath.Clean(recent.Path)) {
		return fmt.Errorf("recent.path is not local or contains invalid traversal: %s", recent.Path)
	}
	if recent.Limit < 0 {
		return fmt.Errorf("recent.limit cannot be negative")
	}
	return nil
}
