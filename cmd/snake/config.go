package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration after the search order
(--config, ~/.snake/config.yaml, ./configs/snake.yaml, built-in defaults)
has been applied. The output is valid YAML and can be used as a starting
point for a custom config file.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Marshal(gameConfig)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
