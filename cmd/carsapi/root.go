package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/car_insurance_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	// Used for flags
	cfgFile string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "carsapi",
	Short: "Car insurance records service",
	Long: `carsapi records insurance policies and claims for cars, answers
coverage questions and logs policy expiries once per policy.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var envFiles []string
		if cfgFile != "" {
			envFiles = append(envFiles, cfgFile)
		}
		loaded, err := config.LoadConfig(envFiles...)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger = newLogger(cfg)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file to load instead of ./.env")
}

// newLogger returns a JSON logger in production and a text logger otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.IsProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
