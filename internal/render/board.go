package render

import (
	"strconv"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
)

// Glyphs are the runes cells are drawn with.
type Glyphs struct {
	Filled  rune
	Empty   rune
	Preview rune // cells of a proposed placement
}

var (
	Unicode = Glyphs{Filled: '⬢', Empty: '⬡', Preview: '◆'}
	ASCII   = Glyphs{Filled: '#', Empty: '.', Preview: '@'}
)

// queueGap is the number of columns between two queued pieces.
const queueGap = 3

// Cells sit on a staggered grid: column i+k, row j. Neighbors on the same
// row are two columns apart and the other four are one row up or down.

// BoardSize returns the screen area a board of the given radius needs.
func BoardSize(radius int) (w, h int) {
	radius = max(radius, 1)
	return 4*radius - 3, 2*radius - 1
}

func boardPos(c hex.Coord, radius int) (x, y int) {
	return c.LineI() + c.LineK(), c.LineJ() + radius - 1
}

// DrawBoard draws b with its top-left corner at (x0, y0).
func DrawBoard(s *core.Screen, x0, y0 int, b *hex.Board, g Glyphs) {
	for _, c := range b.Cells() {
		x, y := boardPos(c.Pos(), b.Radius())
		if c.Occupied() {
			s.Set(x0+x, y0+y, g.Filled, core.CellColor(c.Color()))
		} else {
			s.Set(x0+x, y0+y, g.Empty, core.ColorDim)
		}
	}
}

// DrawPlacement overlays piece at origin on a board of the given radius
// drawn at (x0, y0). Cells off the board are skipped.
func DrawPlacement(s *core.Screen, x0, y0, radius int, origin hex.Coord, piece *hex.Shape, g Glyphs) {
	for _, c := range piece.Cells() {
		pos := c.Pos().Add(origin)
		if !pos.InRange(radius) {
			continue
		}
		x, y := boardPos(pos, radius)
		s.Set(x0+x, y0+y, g.Preview, core.ColorWhite)
	}
}

// ShapeSize returns the screen area a piece needs.
func ShapeSize(piece *hex.Shape) (w, h int) {
	minX, minY, maxX, maxY, ok := shapeBounds(piece)
	if !ok {
		return 0, 0
	}
	return maxX - minX + 1, maxY - minY + 1
}

// DrawShape draws piece with the top-left of its bounding box at (x0, y0).
func DrawShape(s *core.Screen, x0, y0 int, piece *hex.Shape, g Glyphs) {
	minX, minY, _, _, ok := shapeBounds(piece)
	if !ok {
		return
	}
	color := core.CellColor(piece.Color())
	for _, c := range piece.Cells() {
		x, y := c.LineI()+c.LineK(), c.LineJ()
		s.Set(x0+x-minX, y0+y-minY, g.Filled, color)
	}
}

func shapeBounds(piece *hex.Shape) (minX, minY, maxX, maxY int, ok bool) {
	if piece == nil {
		return 0, 0, 0, 0, false
	}
	for n, c := range piece.Cells() {
		x, y := c.LineI()+c.LineK(), c.LineJ()
		if n == 0 {
			minX, maxX, minY, maxY = x, x, y, y
			continue
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return minX, minY, maxX, maxY, piece.Count() > 0
}

// Board returns the board as text.
func Board(b *hex.Board, opts Options) string {
	s, x0, y0 := opts.canvas(BoardSize(b.Radius()))
	DrawBoard(s, x0, y0, b, opts.glyphs())
	return opts.text(s)
}

// Decision returns the board with piece previewed at origin.
func Decision(b *hex.Board, origin hex.Coord, piece *hex.Shape, opts Options) string {
	s, x0, y0 := opts.canvas(BoardSize(b.Radius()))
	g := opts.glyphs()
	DrawBoard(s, x0, y0, b, g)
	if piece != nil {
		DrawPlacement(s, x0, y0, b.Radius(), origin, piece, g)
	}
	return opts.text(s)
}

// Shape returns a single piece as text.
func Shape(piece *hex.Shape, opts Options) string {
	w, h := ShapeSize(piece)
	s := core.NewScreen(max(w, 1), max(h, 1))
	DrawShape(s, 0, 0, piece, opts.glyphs())
	return opts.text(s)
}

// QueueSize returns the screen area DrawQueue needs: pieces side by side
// with their queue index on the row below.
func QueueSize(queue []*hex.Shape) (w, h int) {
	for i, p := range queue {
		pw, ph := ShapeSize(p)
		pw = max(pw, len(strconv.Itoa(i)))
		if i > 0 {
			w += queueGap
		}
		w += pw
		h = max(h, ph)
	}
	return w, h + 1
}

// DrawQueue draws the queue at (x0, y0).
func DrawQueue(s *core.Screen, x0, y0 int, queue []*hex.Shape, g Glyphs) {
	_, h := QueueSize(queue)
	x := x0
	for i, p := range queue {
		label := strconv.Itoa(i)
		pw, _ := ShapeSize(p)
		DrawShape(s, x, y0, p, g)
		s.DrawText(x, y0+h-1, label, core.ColorGray)
		x += max(pw, len(label)) + queueGap
	}
}

// Queue returns the queued pieces as text.
func Queue(queue []*hex.Shape, opts Options) string {
	w, h := QueueSize(queue)
	s := core.NewScreen(w, h)
	DrawQueue(s, 0, 0, queue, opts.glyphs())
	return opts.text(s)
}
