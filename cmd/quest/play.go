package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/console"
	"github.com/vovakirdan/tui-quest/internal/platform/tui"
	"github.com/vovakirdan/tui-quest/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quest",
	Long: `Start a run in this terminal.

Controls:
  WASD/Arrows  - Move
  Enter/Space  - Confirm
  P/Esc        - Pause
  R            - Restart
  Q            - Back to menu / quit
  ` + "`" + `            - Toggle the developer console

Console commands include help, vars, watch, inspect, tp, player, level,
bind and keys. Logs go to ~/.quest/quest.log.

Examples:
  quest play
  quest play --fps 60
  quest play --level ./vault.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, lvl, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logFile, err := tui.OpenLogFile(filepath.Join(config.DataDir(), "quest.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := tui.NewLogger(logFile, "quest", logLevel())

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}

	var clip console.Clipboard
	if console.ClipboardSupported() {
		clip = console.SystemClipboard{}
	}

	app, err := tui.NewApp(tui.AppOptions{
		Config:    cfg,
		Level:     lvl,
		Store:     store,
		Logger:    logger,
		Clipboard: clip,
		ScreenW:   width,
		ScreenH:   height,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session started", "level", lvl.Name, "tick_rate", cfg.TickRate)
	runErr := tui.Run(app)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
