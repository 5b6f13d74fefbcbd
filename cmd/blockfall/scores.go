package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game (tetris if omitted).

Examples:
  blockfall scores
  blockfall scores --limit 25
  blockfall scores --all
  blockfall scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the game")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every game that has recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagScoresAll {
		return runScoresSummary(cmd)
	}

	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'blockfall list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blockfall play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Pieces", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %-5d  %-6d  %s\n",
			i+1, entry.Player, entry.Score, entry.Lines, entry.Pieces, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  |  Games: %d  |  Best lines: %d  |  Total lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.BestLines, stats.TotalLines)
	}
	return nil
}

// runScoresSummary prints one aggregate line per played game.
func runScoresSummary(cmd *cobra.Command) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-12s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	for _, id := range ids {
		st := all[id]
		title := id
		if info, ok := registry.Info(id); ok {
			title = info.Title
		}
		fmt.Fprintf(out, "  %-12s  %-6d  %-8d  %-8.0f  %s\n",
			title, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
