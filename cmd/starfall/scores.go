package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresAll    bool
	flagScoresClear  bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show round history and the high score",
	Long: `Display the best (or most recent) rounds for a game.
The game defaults to starfall.

Examples:
  starfall scores
  starfall scores --recent --limit 20
  starfall scores --all
  starfall scores --tui
  starfall scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round, best first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the round history and the high score")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history in an interactive table")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "recent")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := starfall.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starfall list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = clearScores(store, gameID)
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, gameID, title, width, height)
	default:
		err = printScores(store, gameID, title)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	if gameID == starfall.GameID {
		if err := store.DeleteSetting(starfall.HighScoreKey); err != nil {
			return err
		}
	}
	fmt.Printf("Cleared round history for %s.\n", gameID)
	return nil
}

// selectScores loads the rounds chosen by the --all, --recent and --limit
// flags along with a heading for them.
func selectScores(store *storage.Store, gameID string) (string, []storage.ScoreEntry, error) {
	switch {
	case flagScoresAll:
		scores, err := store.AllScores(gameID)
		return "All Rounds", scores, err
	case flagScoresRecent:
		scores, err := store.RecentScores(gameID, flagScoresLimit)
		return "Recent Rounds", scores, err
	default:
		scores, err := store.TopScores(gameID, flagScoresLimit)
		return "Best Rounds", scores, err
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	heading, scores, err := selectScores(store, gameID)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starfall play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "#", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := bestScore(store, gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Rounds > 0 {
		fmt.Printf("Rounds: %d  Average: %.1f\n", stats.Rounds, stats.AvgScore)
	}
	return nil
}

// bestScore combines the history maximum with the persisted high score,
// which survives even when individual rounds were not recorded.
func bestScore(store *storage.Store, gameID string) (int, error) {
	best, err := store.HighScore(gameID)
	if err != nil {
		return 0, err
	}
	if gameID == starfall.GameID {
		persisted, err := store.Int(starfall.HighScoreKey)
		if err != nil {
			return 0, err
		}
		best = max(best, persisted)
	}
	return best, nil
}
