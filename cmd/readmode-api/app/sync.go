package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stacklok/readmode-server/internal/app"
	"github.com/stacklok/readmode-server/internal/status"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the catalog once and exit",
		Long: `Fetch the configured catalog once, write its snapshot and sync status to the
data directory and exit. A server started afterwards on the same data
directory serves the synced catalog immediately.

Exits with an error when the sync fails.`,
		RunE: runSync,
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().String("data-dir", "./data", "Directory for sync status and catalog snapshots")
	cmd.Flags().String("format", "", "Output format of the resulting status (json)")

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	v, err := commandViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	syncStatus, err := app.RunSyncOnce(cmd.Context(),
		app.WithConfig(cfg),
		app.WithDataDirectory(v.GetString("data-dir")),
	)
	if err != nil {
		return err
	}

	if v.GetString("format") == "json" {
		output, err := json.MarshalIndent(syncStatus, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format sync status: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	}

	if syncStatus.Phase != status.SyncPhaseComplete {
		return fmt.Errorf("sync of catalog %s failed: %s", cfg.GetCatalogName(), syncStatus.Message)
	}

	slog.Info("Catalog synced",
		"catalog", cfg.GetCatalogName(),
		"playlists", syncStatus.PlaylistCount,
		"videos", syncStatus.VideoCount)
	return nil
}
