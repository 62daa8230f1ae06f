package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellfn"
	"github.com/aretw0/cellfn/internal/config"
	"github.com/aretw0/cellfn/internal/logging"
	"github.com/aretw0/cellfn/internal/presentation/tui"
	"github.com/aretw0/cellfn/pkg/observability"
	"github.com/aretw0/cellfn/pkg/registry"
)

// app is the state shared by every command, set up before any of them runs.
var app struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *observability.Metrics
	registry *registry.Registry
}

var rootCmd = &cobra.Command{
	Use:   "cellfn",
	Short: "cellfn evaluates spreadsheet functions",
	Long: `cellfn hosts a registry of spreadsheet functions behind a uniform calling
pipeline: arguments are broadcast over ranges, results are normalized to
payloads, and failures come back as error values such as #DIV/0!.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(cellfn.Version))
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands). Dotted names are config keys.
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log.level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log.format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().Bool("registry.override", false, "Let later registrations replace earlier ones")
	rootCmd.PersistentFlags().String("locale", "en_US", "Locale passed to functions")
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.New(level, cfg.Log.Format, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	metrics := observability.NewMetrics()
	reg, err := cellfn.New(
		registry.WithLogger(logger),
		registry.WithObserver(metrics),
		registry.WithOverride(cfg.Registry.Override),
	)
	if err != nil {
		return fmt.Errorf("failed to build function registry: %w", err)
	}

	app.cfg = cfg
	app.logger = logger
	app.metrics = metrics
	app.registry = reg
	logger.Debug("registry ready", "functions", reg.Len(), "locale", cfg.Locale)
	return nil
}
