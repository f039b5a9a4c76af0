package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docaid/DocAid-BookingService/internal/config"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

const defaultConfigPath = "config.toml"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "docaid-booking",
		Short:         "DocAid doctor appointment booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the TOML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(rosterCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfigAndLogger общая инициализация для всех команд
func loadConfigAndLogger(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
