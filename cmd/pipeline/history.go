package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/runstore"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recent runs or show one run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store, err := runstore.Open(cfg.Paths.Database)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		e, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		printEntry(cmd, e)
		return nil
	}

	entries, err := store.List(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}
	for _, e := range entries {
		status := "ok"
		if e.Error != "" {
			status = "failed"
		}
		cmd.Printf("%s  %s  %-9s %-8s %d/%d chunks  %-6s  %s\n",
			e.StartedAt().Format("2006-01-02 15:04"), e.ID, e.Mode, e.Chunking, e.Succeeded, e.Total, status, e.Source)
	}
	return nil
}

func printEntry(cmd *cobra.Command, e runstore.Entry) {
	cmd.Printf("ID:        %s\n", e.ID)
	cmd.Printf("Source:    %s\n", e.Source)
	cmd.Printf("Started:   %s\n", e.StartedAt().Format("2006-01-02 15:04:05"))
	cmd.Printf("Elapsed:   %s\n", e.Elapsed())
	cmd.Printf("Mode:      %s (%s chunking, %s merge)\n", e.Mode, e.Chunking, e.Merge)
	cmd.Printf("Chunks:    %d total, %d succeeded, %d failed\n", e.Total, e.Succeeded, e.Failed)
	cmd.Printf("Words:     %d\n", e.Words)
	if e.OutputPath != "" {
		cmd.Printf("Output:    %s\n", e.OutputPath)
	}
	if e.Error != "" {
		cmd.Printf("Error:     %s\n", e.Error)
	}
}
