package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/storage"
)

var (
	flagScoreLimit int
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top scores, optionally for one level only.

Examples:
  quest scores
  quest scores "The Undercroft"
  quest scores --limit 20
  quest scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	level := ""
	if len(args) > 0 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(level); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(level, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	title := "High Scores"
	if level != "" {
		title += " - " + level
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quest play' to set the first high score!")
		return
	}

	fmt.Println(scoreTable(scores).View())

	if best, err := store.HighScore(level); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func scoreTable(scores []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Level", Width: 18},
		{Title: "Score", Width: 7},
		{Title: "Coins", Width: 5},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, len(scores))
	for i, e := range scores {
		result := "died"
		if e.Won {
			result = "escaped"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			e.Level,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Coins),
			result,
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
}
