package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joerp78/mark-and-sweep-project/cmd/gcsim/logger"
	"github.com/joerp78/mark-and-sweep-project/heap"
)

var (
	verboseLog bool
	regionSize int
)

var rootCmd = &cobra.Command{
	Use:   "gcsim",
	Short: "Interactive garbage collection simulator",
	Long: `gcsim drives a fixed-size, in-process heap through two interchangeable
garbage collectors — reference counting and conservative mark-and-sweep —
via a small interactive command loop.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseLog, "verbose", "v", false, "Enable diagnostic logging to stderr")
	rootCmd.PersistentFlags().IntVar(&regionSize, "region-size", heap.DefaultRegionSize, "Size in bytes of the mapped heap region")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive() error {
	logger.Init(logger.Options{Enabled: verboseLog, Level: slog.LevelDebug})

	h, err := heap.New(heap.WithRegionSize(regionSize))
	if err != nil {
		logger.Error("failed to initialize heap", "error", err)
		return fmt.Errorf("gcsim: %w", err)
	}
	defer h.Close()

	return runREPL(os.Stdin, os.Stdout, h)
}
