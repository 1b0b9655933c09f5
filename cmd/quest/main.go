// quest is a small dungeon crawler for the terminal with a built-in
// developer console.
//
// Usage:
//
//	quest [play]            - Play the quest in this terminal
//	quest serve             - Start SSH server for remote play
//	quest scores [level]    - Show high scores
//	quest keys              - Show the key bindings
//	quest history           - Show the saved console history
//	quest config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--config <path>       - Use a custom config file
//	--level <path>        - Play a custom level file
//	--db <path>           - Set database path (default: ~/.quest/quest.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevel    string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "TUI Quest - a dungeon crawl in your terminal",
	Long: `TUI Quest is a small tile dungeon crawler. Collect coins, avoid the
spikes and find the exit. Press the backtick key at any time to open the
developer console.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  keys     - Show the key bindings
  history  - Show the saved console history
  config   - Print the default configuration

Examples:
  quest play
  quest play --level ./vault.yaml
  quest serve --ssh :2222
  quest scores`,
	Args:         cobra.NoArgs,
	Run:          runPlay,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a level YAML (default: config level)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quest/quest.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGame reads the config and level selected by the global flags.
func loadGame() (config.Config, config.LevelFile, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, config.LevelFile{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	path := flagLevel
	if path == "" {
		path = cfg.Level
	}
	lvl, err := config.LoadLevel(path)
	if err != nil {
		return config.Config{}, config.LevelFile{}, err
	}
	return cfg, lvl, nil
}

func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		return log.InfoLevel
	}
	return level
}
