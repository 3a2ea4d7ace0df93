// Package app provides the commands of the readmode catalog API server.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stacklok/readmode-server/internal/versions"
)

// NewRootCmd creates the root command. --debug (or READMODE_DEBUG) lowers
// level to debug.
func NewRootCmd(level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "readmode-api",
		DisableAutoGenTag: true,
		Short:             "Readmode catalog API server",
		Long: `Readmode catalog API server syncs a catalog of curated YouTube playlists
and serves it over REST, with tag based filtering and a recently watched list.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			v, err := commandViper(cmd)
			if err != nil {
				slog.Error("Error reading flags", "error", err)
				return
			}
			if v.GetBool("debug") && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versions.GetVersionInfo()
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to read format flag: %w", err)
			}

			if format == "json" {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format version info: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(output))
				return nil
			}

			slog.Info("readmode-api version",
				"version", info.Version,
				"commit", info.Commit,
				"built", info.BuildDate,
				"go", info.GoVersion,
				"platform", info.Platform)
			return nil
		},
	}
	cmd.Flags().String("format", "", "Output format (json)")
	return cmd
}
