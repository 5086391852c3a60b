package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Load the configuration the same way 'snake play' does and print it as YAML.

Search order: --config path, ~/.snake/config.yaml, ./configs/snake.yaml,
then the built-in default.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
