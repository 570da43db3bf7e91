package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/game"
	"github.com/vovakirdan/hexblocks/internal/render"
)

var flagShapes bool

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `Lists every piece the generator can produce with its 7-bit mask.
Masks are what 'hexblocks evaluate --queue' takes.

Examples:
  hexblocks pieces
  hexblocks pieces --shapes`,
	Run: runPieces,
}

func init() {
	piecesCmd.Flags().BoolVar(&flagShapes, "shapes", false, "Draw each piece")
}

func runPieces(cmd *cobra.Command, args []string) {
	opts := renderOptions()

	rows := make([][]string, len(game.Catalog))
	for i, p := range game.Catalog {
		shape := p.Shape(i % len(core.DefaultPalette))
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			p.Name,
			fmt.Sprintf("%d", p.Mask),
			fmt.Sprintf("%07b", p.Mask),
			fmt.Sprintf("%d", shape.Count()),
		}
	}
	fmt.Println(render.Table([]string{"#", "Name", "Mask", "Bits", "Cells"}, rows, opts.Plain))

	if !flagShapes {
		return
	}

	fmt.Println()
	for i, p := range game.Catalog {
		fmt.Printf("%d %s\n", i, p.Name)
		fmt.Println(render.Shape(p.Shape(i%len(core.DefaultPalette)), opts))
		fmt.Println()
	}
}
