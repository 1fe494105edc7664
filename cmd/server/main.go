package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/config"
	"github.com/nikol804/dotapost/internal/logger"
)

var configFile string

// rootCmd is the dotapost binary.
var rootCmd = &cobra.Command{
	Use:   "dotapost",
	Short: "Community news and blogging platform",
	Long: `dotapost serves the news feed, post, comment and moderation API.

Available subcommands:
  serve        - Run the HTTP API
  migrate      - Apply or roll back the database schema
  create-user  - Provision an account with its profile
  issue-token  - Sign a development bearer token`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and initializes the logger from it.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, fmt.Errorf("set CONFIG_FILE: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded",
		zap.String("storage", cfg.StorageBackend),
		zap.String("port", cfg.ServerPort),
	)
	return cfg, nil
}
