package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/algos"
	"github.com/vovakirdan/hexblocks/internal/codec"
	"github.com/vovakirdan/hexblocks/internal/game"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/render"
)

var (
	flagBoard      string
	flagQueue      string
	flagEvalAlgo   string
	flagEvalRadius int
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Pick a move for a board and a queue",
	Long: `Ask an algorithm for the next move.

The board is one character per cell in board order: 1, X or x for an
occupied cell, 0 or . for an empty one. Whitespace is ignored. The
number of cells decides the radius. Without --board an empty board of
--radius (or the configured radius) is used.

The queue is a list of 7-bit piece masks. See 'hexblocks pieces'.

Examples:
  hexblocks evaluate --queue 8,28,127
  hexblocks evaluate --radius 3 --queue 8 --algorithm nrminimax
  hexblocks evaluate --board 1000000 --queue 8`,
	Run: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&flagBoard, "board", "", "Board cells, e.g. 0100000")
	evaluateCmd.Flags().StringVar(&flagQueue, "queue", "", "Piece masks, e.g. 8,28,127")
	evaluateCmd.Flags().StringVar(&flagEvalAlgo, "algorithm", "", "Algorithm ID (default: algorithm.default from config)")
	evaluateCmd.Flags().IntVar(&flagEvalRadius, "radius", 0, "Radius of the empty board used without --board")
	_ = evaluateCmd.MarkFlagRequired("queue")
}

func runEvaluate(cmd *cobra.Command, args []string) {
	cfg, rt := runtimeConfig("", flagEvalRadius)

	var algArgs []string
	if flagEvalAlgo != "" {
		algArgs = []string{flagEvalAlgo}
	}
	alg := algorithmFromArgs(algArgs, cfg)
	alg.Reset(rt)

	board := hex.NewBoard(rt.Radius)
	if flagBoard != "" {
		b, err := codec.ParseBoard(flagBoard)
		if err != nil {
			fail("%v", err)
		}
		board = b
	}

	queue, err := codec.ParseQueue(flagQueue)
	if err != nil {
		fail("%v", err)
	}

	d, err := algos.Evaluate(alg, board, queue)
	if err != nil {
		if algos.IsNoMove(err) {
			fmt.Println("No move: no queued piece fits the board.")
			return
		}
		fail("%v", err)
	}

	after, removed, err := board.Trial(d.Origin, d.Piece)
	if err != nil {
		fail("%v", err)
	}

	opts := renderOptions()
	opts.Frame = true
	fmt.Printf("Algorithm: %s\n", d.Algorithm)
	fmt.Printf("Piece:     %d (mask %d)\n", d.Index, d.Piece.Mask())
	fmt.Printf("Origin:    %v\n", d.Origin)
	fmt.Printf("Cleared:   %d\n", len(removed))
	fmt.Printf("Points:    %d\n", game.Points(d.Piece.Count(), len(removed)))
	fmt.Println()
	fmt.Println(render.Decision(board, d.Origin, d.Piece, opts))
	fmt.Println()
	fmt.Printf("Board after: %s\n", codec.FormatBoard(after))
}
