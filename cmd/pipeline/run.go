package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
)

var (
	runMode     string
	runStrategy string
	runMerge    string
	runArchive  bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Process one transcript or audio file",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().StringVar(&runMode, "mode", "", "output mode: brief or questions")
	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "chunking strategy: fixed or semantic")
	runCmd.Flags().StringVar(&runMerge, "merge", "", "merge strategy: model or rules")
	runCmd.Flags().BoolVar(&runArchive, "archive", false, "move the input to the archived folder on success")
	rootCmd.AddCommand(runCmd)
}

// applyOverrides copies command-line flags over the loaded config and revalidates it.
func applyOverrides(cmd *cobra.Command) error {
	if cmd != runCmd {
		return nil
	}
	if runMode != "" {
		cfg.Mode = runMode
	}
	if runStrategy != "" {
		cfg.Chunking.Strategy = runStrategy
	}
	if runMerge != "" {
		cfg.Merge.Strategy = runMerge
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	proc, store, err := build(ctx, cfg, log, newProgress(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer store.Close()

	if runArchive {
		return proc.Process(ctx, args[0])
	}

	run, err := proc.Run(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Run %s: %d/%d chunks analyzed (%s merge)\n", run.ID, run.Artifact.Succeeded, run.Artifact.Total, run.Artifact.Strategy)
	if run.Artifact.Failed > 0 {
		cmd.Printf("Warning: %d chunks failed\n", run.Artifact.Failed)
	}
	suffix := "brief"
	if cfg.Mode == config.ModeQuestions {
		suffix = "questions"
	}
	cmd.Printf("Output: %s/%s_%s.md\n", run.OutputPath, run.Name, suffix)
	return nil
}
