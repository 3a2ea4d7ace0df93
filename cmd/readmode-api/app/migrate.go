package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/stacklok/readmode-server/database"
	"github.com/stacklok/readmode-server/internal/config"
	"github.com/stacklok/readmode-server/internal/sources"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the catalog tables of a database source",
		Long: `Apply the schema migrations that create the playlists and videos tables in
the database configured as the catalog source. With --seed, the tables are
then replaced with the contents of a catalog file (json or yaml).

With --down, all migrations are reverted and the tables are dropped.
WARNING: this destroys the catalog data, so --yes is required.

Examples:
  # Create the tables and load a catalog
  readmode-api migrate --config config.yaml --seed catalog.json

  # Show the current schema version
  readmode-api migrate --config config.yaml --print-version

  # Drop the tables
  readmode-api migrate --config config.yaml --down --yes`,
		RunE: runMigrate,
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().String("seed", "", "Catalog file to load into the tables after migrating")
	cmd.Flags().Bool("down", false, "Revert all migrations, dropping the catalog tables")
	cmd.Flags().Bool("yes", false, "Confirm a destructive --down")
	cmd.Flags().Bool("print-version", false, "Print the current schema version and exit")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	v, err := commandViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	if cfg.Source.Database == nil {
		return fmt.Errorf("migrate requires a %s source", config.SourceTypeDatabase)
	}

	down := v.GetBool("down")
	if down && !v.GetBool("yes") {
		return errors.New("migrate --down drops the catalog tables, pass --yes to confirm")
	}
	if down && v.GetString("seed") != "" {
		return errors.New("--seed cannot be combined with --down")
	}

	connStr, err := cfg.Source.Database.GetConnectionString()
	if err != nil {
		return fmt.Errorf("failed to build connection string: %w", err)
	}

	m, err := database.NewFromConnectionString(connStr)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if v.GetBool("print-version") {
		return printMigrationVersion(cmd, m)
	}

	if down {
		slog.Warn("Migrating down all steps, the catalog tables will be dropped",
			"database", cfg.Source.Database.Database)
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration failed: %w", err)
		}
		slog.Info("Catalog tables dropped", "database", cfg.Source.Database.Database)
		return nil
	}

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration failed: %w", err)
		}
		slog.Info("No migrations to apply, the schema is up to date")
	}
	logMigrationVersion(m)

	seed := v.GetString("seed")
	if seed == "" {
		return nil
	}
	return seedCatalog(cmd.Context(), connStr, seed)
}

func seedCatalog(ctx context.Context, connStr, seed string) error {
	seedCfg := &config.Config{Source: config.SourceConfig{File: &config.FileConfig{Path: seed}}}
	result, err := sources.NewFileSourceHandler().FetchCatalog(ctx, seedCfg)
	if err != nil {
		return fmt.Errorf("failed to read seed catalog: %w", err)
	}

	db, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		_ = db.Close(context.WithoutCancel(ctx))
	}()

	if err := database.SeedCatalog(ctx, db, result.Catalog); err != nil {
		return err
	}

	slog.Info("Catalog seeded",
		"playlists", result.PlaylistCount,
		"videos", result.VideoCount)
	return nil
}

func printMigrationVersion(cmd *cobra.Command, m database.Migrator) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty)\n", version)
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", version)
	}
	return err
}

func logMigrationVersion(m database.Migrator) {
	version, dirty, err := m.Version()
	if err != nil {
		slog.Warn("Failed to get migration version", "error", err)
		return
	}

	if dirty {
		slog.Warn("Current migration version is dirty, manual intervention may be required", "version", version)
	} else {
		slog.Info("Current migration version", "version", version)
	}
}
