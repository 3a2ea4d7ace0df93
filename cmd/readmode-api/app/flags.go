package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/readmode-server/internal/config"
)

// commandViper binds the flags of cmd to a fresh viper instance, so every
// flag can also be set as READMODE_<FLAG>, e.g. READMODE_DATA_DIR
func commandViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// loadConfig loads and validates the configuration file named by --config
func loadConfig(v *viper.Viper) (*config.Config, error) {
	configPath := v.GetString("config")
	if configPath == "" {
		return nil, fmt.Errorf("a configuration file is required (--config or %s_CONFIG)", config.EnvPrefix)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
