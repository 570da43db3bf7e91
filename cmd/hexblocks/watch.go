package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/platform/tui"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var (
	flagRate      int
	flagWatchTurn int
)

var watchCmd = &cobra.Command{
	Use:   "watch [algorithm]",
	Short: "Watch an algorithm play",
	Long: `Watch the given algorithm (default: the configured one) play a game.
Each move is shown before it is played. Finished games are recorded.

Controls:
  P/Space    - Pause
  N/Right    - Single step while paused
  +/-        - Faster/slower
  R          - New game
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  hexblocks watch
  hexblocks watch nrminimax --rate 10
  hexblocks watch random --radius 3 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagRate, "rate", 0, "Moves per second")
	watchCmd.Flags().IntVar(&flagWatchTurn, "max-turns", 0, "Stop after this many moves (0 = until no piece fits)")
	watchCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal")
	watchCmd.Flags().IntVar(&flagRadius, "radius", 0, "Board radius (default: board.radius from config)")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, rt := runtimeConfig(flagDifficulty, flagRadius)
	alg := algorithmFromArgs(args, cfg)

	// Open run storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		newLogger().Warn("could not open run database, runs will not be saved", "error", err)
		// Continue without storage - viewer still works
		store = nil
	}

	runErr := tui.RunWatch(alg, store, tui.WatchConfig{
		Runtime:  rt,
		Rate:     flagRate,
		MaxTurns: flagWatchTurn,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
