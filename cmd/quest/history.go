package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the saved console history",
	Long: `Print the console command lines saved by earlier sessions. History is
only saved when console.persist_history is enabled in the config.

Examples:
  quest history
  quest history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 50, "Number of lines to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the saved history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRecall(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Println("History cleared.")
		return
	}

	lines, err := store.LoadRecall(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		return
	}
	if len(lines) == 0 {
		fmt.Println("No console history saved.")
		return
	}
	for i, l := range lines {
		fmt.Printf("%3d  %s\n", i+1, l)
	}
}
