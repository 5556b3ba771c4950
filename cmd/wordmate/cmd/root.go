// Package cmd contains the wordmate CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordmate-backend/internal/app"
	"github.com/heartmarshall/wordmate-backend/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wordmate",
	Short: "WordMate - look up English words and keep a vocabulary notebook",
	Long: `wordmate looks up English words and phrases against the dictionary and
translation sources, keeps a local history of saved words and syncs them to a
Notion database.

Every command reads the same configuration as the server: the YAML file from
--config (or CONFIG_PATH, or ./config.yaml) overridden by environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warn")
}

// loadConfig reads configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

// cliLogger keeps command output readable: only warnings and errors are
// logged unless --verbose is set.
func cliLogger(cfg *config.Config) *slog.Logger {
	logCfg := cfg.Log
	if !verbose {
		logCfg.Level = "warn"
	}
	return app.NewLogger(logCfg)
}

// withComponents builds the components for one command run and closes them
// afterwards. The context is cancelled on SIGINT or SIGTERM.
func withComponents(cmd *cobra.Command, fn func(ctx context.Context, comps *app.Components) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comps, err := app.Build(ctx, cfg, cliLogger(cfg))
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer comps.Close()

	return fn(ctx, comps)
}
