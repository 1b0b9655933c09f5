package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long: `Print every action and the keys bound to it, as loaded from the
config. Bindings can also be changed in game with the console "bind"
command.`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration. Save it to ~/.quest/quest.yaml
and edit it to change the defaults.

Examples:
  quest config > ~/.quest/quest.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bindings, err := cfg.InputBindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.BindingTable(bindings))
	fmt.Printf("%-8s %s\n", "console", cfg.Console.Toggle)
}
