package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ecoalerta/config"
	"ecoalerta/internal/logging"
)

const defaultConfigPath = "config.json"

var (
	configPath string
	useEnv     bool
	logFormat  string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ecoalerta",
	Short: "EcoAlerta - waste collection reminders and incident reports",
	Long: `EcoAlerta tells residents when the next waste collection happens in their
neighborhood and keeps a ledger of reported collection problems.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to configuration file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&useEnv, "env", false, "Load configuration from ECOALERTA_* environment variables")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format override: json or text")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and builds the logger (called by commands that need it).
// serve logs to stdout; the other commands keep stdout for their output.
func loadConfig(logToStdout bool) error {
	var err error
	if useEnv {
		cfg, err = config.LoadFromEnv()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	out := os.Stderr
	if logToStdout {
		out = os.Stdout
	}
	logger = logging.NewLogger(logging.LoggerConfig{
		Format: cfg.Log.Format,
		Level:  logging.ParseLevel(cfg.Log.Level),
		Output: out,
	})
	slog.SetDefault(logger)

	return nil
}
