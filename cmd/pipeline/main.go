package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

var (
	configPath string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Turn long recordings into a brief or a ranked list of questions",
	Long: `Segments a transcript (or transcribes an audio file first), analyzes every
chunk concurrently and merges the partial results into one document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env, the config file and the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyOverrides(cmd); err != nil {
		return err
	}

	log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(context.Background(), "Configuration loaded from %s", configPath)
	return nil
}

// ensureDirectories creates the working directories if they don't exist.
func ensureDirectories(c *config.Config) error {
	for _, dir := range []string{c.Paths.Input, c.Paths.Output, c.Paths.Archived, c.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
