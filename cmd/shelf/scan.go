package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/shelf/internal/scanner"
	"github.com/atelier-tools/shelf/pkg/sqlite"
)

var (
	scanSkip    string
	scanDepth   int
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan ROOT",
	Short: "Synchronize a directory tree with the index",
	Long: `Scan walks ROOT and reconciles the element registry: new paths are
registered, changed paths get their modified time refreshed, and
elements whose paths vanished are cascade-deleted.

Example:
  shelf scan /projects/library --skip '(^|/)\.' --depth 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		es, err := elementStore()
		if err != nil {
			return err
		}

		opts := []scanner.Option{
			scanner.WithLogger(log),
			scanner.WithMaxDepth(scanDepth),
			scanner.WithWorkers(scanWorkers),
		}
		if scanSkip != "" {
			re, err := regexp.Compile(scanSkip)
			if err != nil {
				return fmt.Errorf("compile skip pattern: %w", err)
			}
			opts = append(opts, scanner.WithSkipPattern(re))
		}

		s := scanner.New(es, sqlite.NewInstanceID, opts...)
		stats, err := s.Sync(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		if flagJSON {
			return printJSON(stats)
		}
		fmt.Printf("Scan done: %d created, %d updated, %d removed, %d skipped\n",
			stats.Created, stats.Updated, stats.Removed, stats.Skipped)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanSkip, "skip", "", "regexp of paths to ignore")
	scanCmd.Flags().IntVar(&scanDepth, "depth", scanner.DefaultMaxDepth, "maximum recursion depth")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", scanner.DefaultWorkers, "sync worker pool size")
}
