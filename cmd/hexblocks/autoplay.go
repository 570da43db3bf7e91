package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/codec"
	"github.com/vovakirdan/hexblocks/internal/game"
	"github.com/vovakirdan/hexblocks/internal/render"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var (
	flagGames      int
	flagMaxTurns   int
	flagDifficulty string
	flagRadius     int
	flagNoSave     bool
	flagShowBoard  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay [algorithm]",
	Short: "Play whole games with an algorithm",
	Long: `Play one or more games with the given algorithm (default: the
configured one) and print a summary. Finished runs are stored in the
run database unless --no-save is set.

Game N uses seed+N, so a batch is reproducible with --seed.

Difficulty options:
  easy   - Mostly small pieces, never the 7-cell block
  normal - Every piece can appear

Examples:
  hexblocks autoplay
  hexblocks autoplay nrminimax --games 20
  hexblocks autoplay nrsearch --seed 42 --max-turns 100
  hexblocks autoplay random --difficulty easy --radius 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVarP(&flagGames, "games", "n", 0, "Number of games (default: autoplay.games from config)")
	autoplayCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 0, "Stop each game after this many moves (0 = until no piece fits)")
	autoplayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal")
	autoplayCmd.Flags().IntVar(&flagRadius, "radius", 0, "Board radius (default: board.radius from config)")
	autoplayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the runs")
	autoplayCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Draw the final board of every game")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	cfg, rt := runtimeConfig(flagDifficulty, flagRadius)
	alg := algorithmFromArgs(args, cfg)
	logger := newLogger()

	games := cfg.Autoplay.Games
	if flagGames > 0 {
		games = flagGames
	}
	maxTurns := cfg.Autoplay.MaxTurns
	if cmd.Flags().Changed("max-turns") {
		maxTurns = flagMaxTurns
	}

	// Open run storage
	var store *storage.Store
	if !flagNoSave {
		var err error
		store, err = storage.Open(dbPath(cfg))
		if err != nil {
			logger.Warn("could not open run database, runs will not be saved", "error", err)
			// Continue without storage
			store = nil
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := game.NewRunner(alg, game.RunnerConfig{
		MaxTurns: maxTurns,
		Logger:   logger,
		Store:    store,
	})

	opts := renderOptions()
	base := rt.Seed
	var results []game.Result
	for n := range games {
		rt.Seed = base + int64(n)
		res, err := runner.Run(ctx, rt)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("interrupted", "game", n+1, "turns", res.Turns)
				break
			}
			fail("%v", err)
		}
		results = append(results, res)

		if flagShowBoard {
			if b, err := codec.ParseBoard(res.FinalBoard); err == nil {
				fmt.Printf("Game %d, seed %d\n", n+1, res.Seed)
				fmt.Println(render.Board(b, opts))
				fmt.Println()
			}
		}
	}

	if len(results) == 0 {
		return
	}
	printSummary(alg.Title(), results, opts.Plain)
}

// printSummary prints one row per game and the batch totals.
func printSummary(title string, results []game.Result, plain bool) {
	rows := make([][]string, len(results))
	total, best := 0, 0
	var elapsed time.Duration
	for i, r := range results {
		end := "game over"
		if !r.GameOver {
			end = "turn limit"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Cleared),
			end,
			r.Duration.Round(time.Millisecond).String(),
		}
		total += r.Score
		best = max(best, r.Score)
		elapsed += r.Duration
	}

	fmt.Printf("Autoplay - %s\n", title)
	fmt.Println(render.Table([]string{"Game", "Seed", "Score", "Turns", "Cleared", "End", "Time"}, rows, plain))
	fmt.Printf("Games: %d  Best: %d  Average: %.1f  Time: %s\n",
		len(results), best, float64(total)/float64(len(results)), elapsed.Round(time.Millisecond))
}
