package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpdg/capguard/internal/config"
	"github.com/rpdg/capguard/internal/logging"
	"github.com/rpdg/capguard/window"
)

var (
	version = "0.1.0"
	cfgFile string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "capguard",
	Short:         "Screen-capture exclusion and monitor capture",
	Long:          `capguard hides windows from screen capture output, lists monitors and captures them as pixel buffers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "capguard v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is capguard.yaml in the user config dir or .)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(supportedCmd)
	rootCmd.AddCommand(excludeCmd)
	rootCmd.AddCommand(affinityCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	if cfg.DPIAware {
		// Geometry must be in physical pixels before any monitor query.
		if err := window.EnablePerMonitorDPI(); err != nil {
			logger.Debug("per-monitor DPI awareness unavailable", zap.Error(err))
		}
	}
	return nil
}
