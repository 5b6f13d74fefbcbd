package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (tetris if omitted).

Controls:
  Left/Right, h/l   - Move
  Up, x, k          - Rotate clockwise
  z                 - Rotate counter-clockwise
  Down, j           - Soft drop
  Space             - Hard drop
  c                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  B/Esc             - Back (when paused or game over)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Difficulty options (gravity interval):
  easy   - 500ms per row
  normal - 333ms per row
  hard   - 200ms per row

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: OS user)")
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game packages before a game is created.
func applyGameFlags() error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			return err
		}
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blockfall list' to see available games", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	player := flagPlayer
	if player == "" {
		player = localPlayer()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "player", player, "fps", flagFPS, "seed", flagSeed)
	if _, err := tui.Run(game, store, runtimeConfig(), player); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
