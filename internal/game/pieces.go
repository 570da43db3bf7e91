// Package game runs the puzzle: a board, a queue of generated pieces and
// the score. It composes the hex engine and the algorithms and contains no
// I/O; the autoplay runner is the only part that logs.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/hexblocks/internal/hex"
)

// Piece is a named entry of the catalog.
type Piece struct {
	Name string
	Mask byte
}

// Shape builds the piece in the given color.
func (p Piece) Shape(color int) *hex.Shape {
	s, err := hex.ShapeFromMask(p.Mask, color)
	if err != nil {
		panic(fmt.Sprintf("game: catalog piece %q: %v", p.Name, err))
	}
	return s
}

// Catalog lists every piece in index order. The index is what PieceByIndex
// and the CLI use.
var Catalog = []Piece{
	{"uno", 8},
	{"triangle3A", 13},
	{"triangle3B", 88},
	{"line3I", 28},
	{"line3J", 73},
	{"line3K", 42},
	{"corner3Il", 74},
	{"corner3Jl", 56},
	{"corner3Kl", 76},
	{"corner3Ir", 41},
	{"corner3Jr", 14},
	{"corner3Kr", 25},
	{"rhombus4I", 27},
	{"rhombus4J", 120},
	{"rhombus4K", 90},
	{"fan4A", 78},
	{"fan4B", 57},
	{"corner4Ir", 114},
	{"corner4Il", 39},
	{"corner4Jr", 83},
	{"corner4Jl", 101},
	{"corner4Kr", 116},
	{"corner4Kl", 23},
	{"asymmetrical4Ia", 92},
	{"asymmetrical4Ib", 30},
	{"asymmetrical4Ic", 60},
	{"asymmetrical4Id", 29},
	{"asymmetrical4Ja", 75},
	{"asymmetrical4Jb", 77},
	{"asymmetrical4Jc", 89},
	{"asymmetrical4Jd", 105},
	{"asymmetrical4Ka", 46},
	{"asymmetrical4Kb", 106},
	{"asymmetrical4Kc", 43},
	{"asymmetrical4Kd", 58},
	{"bigBlock", 127},
}

// Catalog positions used by the generator.
const (
	pieceUno        = 0
	pieceTriangle3A = 1
	pieceLine3I     = 3
	pieceCorner3Il  = 6
	pieceCorner3Ir  = 9
	pieceRhombus4I  = 12
	pieceFan4A      = 15
	pieceCorner4Ir  = 17
	pieceAsym4Ia    = 23
	pieceBigBlock   = 35
)

// PieceByIndex returns the catalog piece at index. Out-of-range indices
// give the big block.
func PieceByIndex(index int) Piece {
	if index < 0 || index >= len(Catalog) {
		return Catalog[pieceBigBlock]
	}
	return Catalog[index]
}

// PieceByName looks up a catalog piece.
func PieceByName(name string) (Piece, bool) {
	for _, p := range Catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Piece{}, false
}

// PieceByMask returns the catalog piece with the given mask.
func PieceByMask(mask byte) (Piece, bool) {
	for _, p := range Catalog {
		if p.Mask == mask&0x7F {
			return p, true
		}
	}
	return Piece{}, false
}

// Generator draws random pieces with the easy or normal frequency table.
type Generator struct {
	rng    *rand.Rand
	easy   bool
	colors int
}

// NewGenerator creates a generator. Colors below 1 mean every piece gets
// palette color 0.
func NewGenerator(seed int64, easy bool, colors int) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		easy:   easy,
		colors: max(colors, 1),
	}
}

// Next returns a new random piece in a random palette color.
func (g *Generator) Next() *hex.Shape {
	var p Piece
	if g.easy {
		p = g.easyPiece()
	} else {
		p = g.normalPiece()
	}
	return p.Shape(g.rng.Intn(g.colors))
}

// easyPiece favors the small pieces; 4-cell pieces are a second roll.
func (g *Generator) easyPiece() Piece {
	i := g.rng.Intn(74)
	switch {
	case i < 8:
		return Catalog[pieceTriangle3A]
	case i < 16:
		return Catalog[pieceTriangle3A+1]
	case i < 34:
		return Catalog[pieceLine3I+(i-16)/6]
	case i < 43:
		return Catalog[pieceCorner3Ir+(i-34)/3]
	case i < 52:
		return Catalog[pieceCorner3Il+(i-43)/3]
	case i < 64:
		return Catalog[pieceRhombus4I+(i-52)/4]
	}

	j := g.rng.Intn(25)
	switch {
	case j < 4:
		return Catalog[pieceFan4A+j/2]
	case j < 10:
		return Catalog[leftRightCorner4(j-4)]
	case j < 22:
		return Catalog[pieceAsym4Ia+(j-10)]
	default:
		return Catalog[pieceUno]
	}
}

// normalPiece is the standard distribution, including the big block.
func (g *Generator) normalPiece() Piece {
	i := g.rng.Intn(86)
	switch {
	case i < 12:
		return Catalog[pieceTriangle3A+i/6]
	case i < 24:
		return Catalog[pieceLine3I+(i-12)/4]
	case i < 30:
		return Catalog[pieceCorner3Ir+(i-24)/2]
	case i < 36:
		return Catalog[pieceCorner3Il+(i-30)/2]
	case i < 48:
		return Catalog[pieceRhombus4I+(i-36)/4]
	case i < 60:
		return Catalog[pieceFan4A+(i-48)/6]
	case i < 72:
		return Catalog[leftRightCorner4((i-60)/2)]
	case i < 84:
		return Catalog[pieceAsym4Ia+(i-72)]
	default:
		return Catalog[pieceBigBlock]
	}
}

// leftRightCorner4 maps 0..5 to corner4 Il, Ir, Jl, Jr, Kl, Kr.
// The catalog stores each pair right first.
func leftRightCorner4(n int) int {
	return pieceCorner4Ir + n/2*2 + (1 - n%2)
}
