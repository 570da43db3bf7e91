package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/codec"
	"github.com/vovakirdan/hexblocks/internal/config"
	"github.com/vovakirdan/hexblocks/internal/platform/tui"
	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/render"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagRunID       string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [algorithm]",
	Short: "Show recorded runs",
	Long: `Without an algorithm, shows per-algorithm statistics. With one,
shows its best runs.

Examples:
  hexblocks scores
  hexblocks scores nrsearch --limit 20
  hexblocks scores --run 6f1c...     # Show one run with its final board
  hexblocks scores random --clear    # Delete the runs of an algorithm
  hexblocks scores -i                # Browse runs interactively`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs of the given algorithm")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	// Open run storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	plain := renderOptions().Plain

	switch {
	case flagInteractive:
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}

	case flagRunID != "":
		showRun(store, flagRunID)

	case len(args) == 0:
		showStats(store, plain)

	default:
		algID := args[0]
		if !registry.Exists(algID) {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", algID)
			fmt.Fprintln(os.Stderr, "Run 'hexblocks list' to see available algorithms.")
			os.Exit(1)
		}
		if flagClear {
			if err := store.ClearRuns(algID); err != nil {
				store.Close()
				fail("%v", err)
			}
			fmt.Printf("Deleted all runs of %s.\n", algID)
			return
		}
		showTopRuns(store, algID, plain)
	}
}

// showStats prints one row per algorithm with recorded runs.
func showStats(store *storage.Store, plain bool) {
	all, err := store.AllAlgorithmStats()
	if err != nil {
		store.Close()
		fail("retrieving stats: %v", err)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hexblocks autoplay' to record the first one!")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, len(ids))
	for i, id := range ids {
		s := all[id]
		rows[i] = []string{
			id,
			fmt.Sprintf("%d", s.Runs),
			fmt.Sprintf("%d", s.BestScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			fmt.Sprintf("%.1f", s.AvgTurns),
			s.LastRun.Format("2006-01-02 15:04"),
		}
	}
	fmt.Println(render.Table([]string{"Algorithm", "Runs", "Best", "Avg score", "Avg turns", "Last run"}, rows, plain))
}

// showTopRuns prints the best runs of one algorithm.
func showTopRuns(store *storage.Store, algID string, plain bool) {
	runs, err := store.TopRuns(algID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best runs - %s\n", algID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'hexblocks autoplay %s' to record the first one!\n", algID)
		return
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Cleared),
			fmt.Sprintf("%d", r.Radius),
			fmt.Sprintf("%d", r.Seed),
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	fmt.Println(render.Table([]string{"Rank", "Score", "Turns", "Cleared", "Radius", "Seed", "Run", "Date"}, rows, plain))
}

// showRun prints one run and its final board.
func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if run == nil {
		store.Close()
		fail("no run with ID %q", runID)
	}

	mode := "normal"
	if run.Easy {
		mode = "easy"
	}
	fmt.Printf("Run:       %s\n", run.RunID)
	fmt.Printf("Algorithm: %s\n", run.Algorithm)
	fmt.Printf("Board:     radius %d, queue %d, %s pieces\n", run.Radius, run.QueueSize, mode)
	fmt.Printf("Seed:      %d\n", run.Seed)
	fmt.Printf("Score:     %d (%d turns, %d cells cleared)\n", run.Score, run.Turns, run.Cleared)
	fmt.Printf("Played:    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))

	if b, err := codec.ParseBoard(run.FinalBoard); err == nil {
		fmt.Println()
		opts := renderOptions()
		opts.Frame = true
		fmt.Println(render.Board(b, opts))
	}
}
