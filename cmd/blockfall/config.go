package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration for a game. Save it to
~/.blockfall/configs/<game>.yaml or ./configs/<game>.yaml to customize.

Examples:
  blockfall config > ~/.blockfall/configs/tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
