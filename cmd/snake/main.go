// snake is a turn-based Snake game for the terminal.
//
// Usage:
//
//	snake                  - Play in the line-based console
//	snake play --tui       - Play with the Bubble Tea interface
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a turn-based snake game for your terminal",
	Long: `Snake moves one cell for every command you enter.

Steer with w (up), s (down), a (left) and d (right), then press Enter.
An empty line keeps the current heading. Enter q to quit.

Examples:
  snake
  snake play --seed 42
  snake play --tui
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	registerPlayFlags(rootCmd)
	registerPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
