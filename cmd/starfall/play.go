package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoDB       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to starfall.

Controls:
  Mouse click        - Fly to the clicked point
  Arrows/WASD        - Nudge the target
  P/Esc              - Pause
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower ramp, debris starts at 2.5s
  normal - Default ramp (2.0s, -0.02s per second)
  hard   - Faster ramp, debris starts at 1.5s
  fixed  - No ramp, the spawn interval never shrinks

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoDB, "no-db", false, "Do not record rounds or persist the high score")
}

// validateGameFlags checks --difficulty and --config. Games load their config
// lazily on Reset and fall back to defaults, so bad values must be caught here.
func validateGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadStarfall(flagConfig); err != nil {
			return err
		}
	}
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := starfall.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starfall list' to see available games.")
		os.Exit(1)
	}

	// Surface config mistakes before the alt screen hides them.
	if err := validateGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "starfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var store *storage.Store
	if !flagNoDB {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			store = nil
		}
	}

	starfall.SetConfigPath(flagConfig)
	starfall.SetDifficultyPreset(flagDifficulty)
	starfall.SetLogger(logger)
	if store != nil {
		starfall.SetSettingsStore(store)
	} else {
		starfall.SetSettingsStore(storage.NewMemorySettings())
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", flagDifficulty)
	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
