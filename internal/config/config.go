// Package config provides configuration loading and management for the catalog server.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/readmode-server/internal/telemetry"
)

// EnvPrefix is the prefix of every environment variable read by the server
const EnvPrefix = "READMODE"

const (
	// SourceTypeFile is the type for catalog data stored in a local file
	SourceTypeFile = "file"

	// SourceTypeAPI is the type for catalog data fetched from a PostgREST style API
	SourceTypeAPI = "api"

	// SourceTypeDatabase is the type for catalog data read from PostgreSQL
	SourceTypeDatabase = "database"
)

const (
	// SourceFormatJSON is a JSON encoded catalog file
	SourceFormatJSON = "json"

	// SourceFormatYAML is a YAML encoded catalog file
	SourceFormatYAML = "yaml"
)

const (
	// RecentStorageMemory keeps recently watched videos in process memory
	RecentStorageMemory = "memory"

	// RecentStorageFile keeps recently watched videos in a JSON file
	RecentStorageFile = "file"

	// RecentStorageBadger keeps recently watched videos in a Badger database
	RecentStorageBadger = "badger"

	// DefaultRecentLimit is the number of recently watched videos kept
	DefaultRecentLimit = 10
)

const (
	defaultCatalogName   = "default"
	defaultSyncInterval  = time.Minute
	defaultAPIPlaylists  = "/rest/v1/playlists"
	defaultAPIVideos     = "/rest/v1/videos"
	defaultDatabaseSSL   = "require"
	databasePasswordEnv  = EnvPrefix + "_DATABASE_PASSWORD"
	defaultAPIKeyEnvName = EnvPrefix + "_API_KEY"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks; this also cleans the path.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) && !filepath.IsLocal(realPath) {
			return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// CatalogName identifies this catalog in status files and metrics.
	// Defaults to "default" if not specified
	CatalogName string `yaml:"catalogName,omitempty"`

	Source     SourceConfig      `yaml:"source"`
	SyncPolicy *SyncPolicyConfig `yaml:"syncPolicy,omitempty"`
	Filter     *FilterConfig     `yaml:"filter,omitempty"`
	Taxonomy   *TaxonomyConfig   `yaml:"taxonomy,omitempty"`
	Recent     *RecentConfig     `yaml:"recent,omitempty"`
	Telemetry  *telemetry.Config `yaml:"telemetry,omitempty"`
}

// SourceConfig defines where catalog data is read from.
// Exactly one of File, API or Database must be set.
type SourceConfig struct {
	// Format of a catalog file (json or yaml). Only used by file sources;
	// defaults to the file extension, then json.
	Format string `yaml:"format,omitempty"`

	File     *FileConfig     `yaml:"file,omitempty"`
	API      *APIConfig      `yaml:"api,omitempty"`
	Database *DatabaseConfig `yaml:"database,omitempty"`
}

// FileConfig defines local file source configuration
type FileConfig struct {
	// Path to the catalog file, absolute or relative to the working directory
	Path string `yaml:"path"`
}

// APIConfig defines a PostgREST compatible source, such as a Supabase project
type APIConfig struct {
	// Endpoint is the base URL of the project, e.g. https://xyz.supabase.co
	Endpoint string `yaml:"endpoint"`

	// APIKeyFile holds the anonymous API key. When empty the key is read
	// from READMODE_API_KEY; an empty key sends no auth headers.
	APIKeyFile string `yaml:"apiKeyFile,omitempty"`

	PlaylistsPath string `yaml:"playlistsPath,omitempty"`
	VideosPath    string `yaml:"videosPath,omitempty"`

	// Timeout for each request, e.g. "10s"
	Timeout string `yaml:"timeout,omitempty"`
}

// SyncPolicyConfig defines synchronization settings
type SyncPolicyConfig struct {
	Interval string `yaml:"interval"`
}

// FilterConfig defines which playlists of the source are served
type FilterConfig struct {
	Names *NameFilterConfig `yaml:"names,omitempty"`
	Tags  *TagFilterConfig  `yaml:"tags,omitempty"`
}

// NameFilterConfig defines glob patterns matched against playlist ids
type NameFilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// TagFilterConfig defines tags matched against every tag of a playlist
type TagFilterConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// TaxonomyConfig overrides the built-in tag ordering and exclusion rules
type TaxonomyConfig struct {
	// EraOrder replaces the chronological era priority list
	EraOrder []string `yaml:"eraOrder,omitempty"`

	// Exclusions replaces the mood exclusion table. Entries are applied
	// exactly as written and are not made symmetric.
	Exclusions map[string][]string `yaml:"exclusions,omitempty"`
}

// RecentConfig defines how recently watched videos are stored
type RecentConfig struct {
	Storage string `yaml:"storage,omitempty"`

	// Path is the directory of file and badger stores; defaults to the data directory
	Path  string `yaml:"path,omitempty"`
	Limit int    `yaml:"limit,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password.
	// The file should contain only the password with optional trailing whitespace
	PasswordFile string `yaml:"passwordFile,omitempty"`

	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// ConnectTimeout bounds connection establishment, e.g. "10s"
	ConnectTimeout string `yaml:"connectTimeout,omitempty"`
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from READMODE_DATABASE_PASSWORD environment variable
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		data, err := os.ReadFile(filepath.Clean(d.PasswordFile))
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if envPassword := os.Getenv(databasePasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or %s environment variable", databasePasswordEnv,
	)
}

// GetConnectionString builds a PostgreSQL connection string.
// The password is URL-escaped to handle special characters safely.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = defaultDatabaseSSL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(password),
		d.Host,
		d.Port,
		d.Database,
		sslMode,
	), nil
}

// GetConnectTimeout returns the connection timeout, defaulting to 10 seconds
func (d *DatabaseConfig) GetConnectTimeout() time.Duration {
	if d.ConnectTimeout != "" {
		if timeout, err := time.ParseDuration(d.ConnectTimeout); err == nil {
			return timeout
		}
	}
	return 10 * time.Second
}

// GetAPIKey returns the API key from APIKeyFile or READMODE_API_KEY.
// An empty key with no error means the API is called anonymously.
func (a *APIConfig) GetAPIKey() (string, error) {
	if a.APIKeyFile != "" {
		data, err := os.ReadFile(filepath.Clean(a.APIKeyFile))
		if err != nil {
			return "", fmt.Errorf("failed to read api key from file %s: %w", a.APIKeyFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return os.Getenv(defaultAPIKeyEnvName), nil
}

// GetPlaylistsPath returns the playlists resource path
func (a *APIConfig) GetPlaylistsPath() string {
	if a.PlaylistsPath == "" {
		return defaultAPIPlaylists
	}
	return a.PlaylistsPath
}

// GetVideosPath returns the videos resource path
func (a *APIConfig) GetVideosPath() string {
	if a.VideosPath == "" {
		return defaultAPIVideos
	}
	return a.VideosPath
}

// GetTimeout returns the per-request timeout; zero means the client default
func (a *APIConfig) GetTimeout() time.Duration {
	if a.Timeout == "" {
		return 0
	}
	timeout, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0
	}
	return timeout
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetCatalogName returns the catalog name, using "default" if not specified
func (c *Config) GetCatalogName() string {
	if c.CatalogName == "" {
		return defaultCatalogName
	}
	return c.CatalogName
}

// GetSyncInterval returns the sync interval, defaulting to one minute
func (c *Config) GetSyncInterval() time.Duration {
	if c.SyncPolicy != nil && c.SyncPolicy.Interval != "" {
		if interval, err := time.ParseDuration(c.SyncPolicy.Interval); err == nil {
			return interval
		}
	}
	return defaultSyncInterval
}

// GetRecentStorage returns the recent storage backend, defaulting to memory
func (c *Config) GetRecentStorage() string {
	if c.Recent == nil || c.Recent.Storage == "" {
		return RecentStorageMemory
	}
	return c.Recent.Storage
}

// GetRecentLimit returns how many recently watched videos are kept
func (c *Config) GetRecentLimit() int {
	if c.Recent == nil || c.Recent.Limit <= 0 {
		return DefaultRecentLimit
	}
	return c.Recent.Limit
}

// GetType returns the inferred type of the source based on which field is present
func (s *SourceConfig) GetType() string {
	if s.File != nil {
		return SourceTypeFile
	}
	if s.API != nil {
		return SourceTypeAPI
	}
	if s.Database != nil {
		return SourceTypeDatabase
	}
	return ""
}

// GetFormat returns the catalog file format
func (s *SourceConfig) GetFormat() string {
	if s.Format != "" {
		return s.Format
	}
	if s.File != nil {
		switch strings.ToLower(filepath.Ext(s.File.Path)) {
		case ".yaml", ".yml":
			return SourceFormatYAML
		}
	}
	return SourceFormatJSON
}
