package cmd

import (
	"fmt"

	"github.com/harrison/assetkit/internal/logger"
	"github.com/harrison/assetkit/internal/tree"
	"github.com/spf13/cobra"
)

// NewTreeCommand creates the treeview command
func NewTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treeview",
		Short: "Print a colorized tree of the current directory",
		Long: `Treeview prints the current working directory as an indented tree.

Entries are sorted by name. Version control, dependency, virtualenv and build
cache folders (.git, node_modules, venv, __pycache__, ...) are skipped along
with their contents. Within each directory at most 50 files of one extension
are listed; the rest are summarized by a single "... (N .ext files omitted)"
line.

Configuration is loaded from .assetkit/config.yaml if present.
CLI flags override configuration file settings.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTree,
	}

	addConfigFlag(cmd)
	cmd.Flags().Int("max-per-ext", 0, "Files listed per extension in one directory (0 = use config)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("log-level", "", "Log level for diagnostics on stderr (debug, info, warn, error)")

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("max-per-ext") {
		maxPerExt, _ := cmd.Flags().GetInt("max-per-ext")
		if maxPerExt <= 0 {
			return fmt.Errorf("--max-per-ext must be > 0, got %d", maxPerExt)
		}
		cfg.Tree.MaxPerExtension = maxPerExt
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()
	opts, err := tree.OptionsFromConfig(cfg.Tree, !noColor && logger.IsTerminal(out))
	if err != nil {
		return err
	}

	log.LogDebug(fmt.Sprintf("Listing . (max %d per extension, %d ignored folders, color=%t)",
		opts.MaxPerExtension, len(opts.IgnoreFolders), opts.Color))

	return tree.NewPrinter(opts).Print(out, ".")
}
