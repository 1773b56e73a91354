package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process every transcript or audio file dropped into the inbox",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Brief Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, %d cores", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	proc, store, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := watcher.New(watcher.Options{
		Dir:           cfg.Paths.Input,
		Handler:       proc.Process,
		Logger:        log,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Mode: %s, chunking: %s, merge: %s", cfg.Mode, cfg.Chunking.Strategy, cfg.Merge.Strategy)
	log.Info(ctx, "Workers: %d per file, %d files at once", cfg.Analysis.MaxWorkers, cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}
	log.Info(ctx, "Brief Pipeline stopped")
	return nil
}
