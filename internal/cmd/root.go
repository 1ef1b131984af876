package cmd

import (
	"fmt"

	"github.com/harrison/assetkit/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// addConfigFlag registers the --config flag shared by both commands
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: .assetkit/config.yaml)")
}

// loadConfig loads the file named by --config, or .assetkit/config.yaml in the
// working directory when the flag is not set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
