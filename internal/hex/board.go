package hex

import (
	"fmt"
	"strings"
)

// Axis names one of the three line directions of the lattice.
type Axis int

const (
	AxisI Axis = iota
	AxisJ
	AxisK
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisI:
		return "I"
	case AxisJ:
		return "J"
	case AxisK:
		return "K"
	default:
		return "Unknown"
	}
}

// Board is the hexagonal playing surface of a fixed radius.
//
// It holds exactly 1 + 3r(r-1) cells, one per in-range coordinate, stored in
// ascending (LineI, LineK) order. Every coordinate lookup is a binary search
// over that order, so nothing may reorder the slice.
type Board struct {
	radius int
	cells  []Cell
}

// NewBoard creates an empty board. Radii below 1 are raised to 1.
func NewBoard(radius int) *Board {
	if radius < 1 {
		radius = 1
	}
	b := &Board{
		radius: radius,
		cells:  make([]Cell, 0, CellCount(radius)),
	}
	// Walking K lines outside and I moves inside yields ascending
	// (LineI, LineK) order directly.
	for a := 0; a < radius*2; a++ {
		for m := 0; m < radius*2; m++ {
			var c Coord
			c.MoveI(m)
			c.MoveK(a)
			if c.InRange(radius) {
				b.cells = append(b.cells, EmptyCell(c))
			}
		}
	}
	return b
}

// CellCount returns the number of cells on a board of the given radius.
func CellCount(radius int) int {
	return 1 + 3*radius*(radius-1)
}

// SolveRadius returns the radius whose board has exactly length cells,
// or -1 when no radius matches.
func SolveRadius(length int) int {
	if length < 1 || length%3 != 1 {
		return -1
	}
	target := (length - 1) / 3
	for r := 1; r*(r-1) <= target; r++ {
		if r*(r-1) == target {
			return r
		}
	}
	return -1
}

// BoardFromBooleans rebuilds a board from its occupancy sequence in board
// order. Colors are set to the defaults.
func BoardFromBooleans(data []bool) (*Board, error) {
	radius := SolveRadius(len(data))
	if radius == -1 {
		return nil, fmt.Errorf("%w: %d cells do not form a board", ErrEncoding, len(data))
	}
	b := NewBoard(radius)
	for i, occupied := range data {
		b.SetStateAt(i, occupied)
	}
	return b, nil
}

// Radius returns the board radius.
func (b *Board) Radius() int { return b.radius }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Cells returns copies of all cells in board order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether the coordinate is on the board.
func (b *Board) Contains(c Coord) bool {
	return c.InRange(b.radius)
}

// Get returns the cell at a slot index or coordinate.
func (b *Board) Get(ref Ref) (Cell, bool) {
	if i, ok := ref.Index(); ok {
		if i < 0 || i >= len(b.cells) {
			return Cell{}, false
		}
		return b.cells[i], true
	}
	c, _ := ref.Coord()
	i := b.index(c)
	if i < 0 {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Occupied reports whether the cell at c exists and is filled.
func (b *Board) Occupied(c Coord) bool {
	i := b.index(c)
	return i >= 0 && b.cells[i].occupied
}

// SetState sets the occupancy at c and resets its color to the default for
// that state. Coordinates off the board are ignored.
func (b *Board) SetState(c Coord, occupied bool) {
	if i := b.index(c); i >= 0 {
		b.SetStateAt(i, occupied)
	}
}

// SetStateAt is SetState by slot index.
func (b *Board) SetStateAt(index int, occupied bool) {
	if index < 0 || index >= len(b.cells) {
		return
	}
	cell := &b.cells[index]
	if cell.occupied == occupied {
		return
	}
	cell.occupied = occupied
	if occupied {
		cell.color = ColorFilled
	} else {
		cell.color = ColorEmpty
	}
}

// SetColorAt sets the color of a slot without touching its state.
func (b *Board) SetColorAt(index, color int) {
	if index >= 0 && index < len(b.cells) {
		b.cells[index].color = color
	}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c.occupied {
			n++
		}
	}
	return n
}

// FilledRatio returns the occupied fraction of the board in [0, 1].
func (b *Board) FilledRatio() float64 {
	return float64(b.Filled()) / float64(len(b.cells))
}

// Reset empties every cell. Radius and cell order are unchanged.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i].occupied = false
		b.cells[i].color = ColorEmpty
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{radius: b.radius, cells: cells}
}

// CanPlace reports whether every occupied cell of s, translated by origin,
// lands on an empty board cell.
func (b *Board) CanPlace(origin Coord, s Grid) bool {
	_, reason := b.conflict(origin, gridCells(s))
	return reason == ""
}

// Place adds s at origin. The whole shape is validated before any cell is
// written, so a failed placement leaves the board unchanged.
func (b *Board) Place(origin Coord, s Grid) error {
	return b.Merge(origin, s)
}

// Merge implements Grid. It is Place for arbitrary grids.
func (b *Board) Merge(origin Coord, other Grid) error {
	cells := gridCells(other)
	if target, reason := b.conflict(origin, cells); reason != "" {
		return &PlacementError{Origin: origin, Target: target, Reason: reason}
	}
	for _, cell := range cells {
		if !cell.occupied {
			continue
		}
		target := &b.cells[b.index(cell.coord.Add(origin))]
		target.occupied = true
		target.color = cell.color
	}
	return nil
}

// conflict returns the first occupied cell that, translated by origin,
// misses the board or lands on an occupied cell. The reason is empty when
// there is none.
func (b *Board) conflict(origin Coord, cells []Cell) (Coord, PlacementReason) {
	for _, cell := range cells {
		if !cell.occupied {
			continue
		}
		pos := cell.coord.Add(origin)
		i := b.index(pos)
		if i < 0 {
			return pos, ReasonOutOfRange
		}
		if b.cells[i].occupied {
			return pos, ReasonOverlap
		}
	}
	return Coord{}, ""
}

// gridCells returns the cells of g for reading. Shapes hand out their own
// slice so the placement loops do not copy it per origin.
func gridCells(g Grid) []Cell {
	if s, ok := g.(*Shape); ok {
		return s.cells
	}
	return g.Cells()
}

// LegalOrigins returns every board coordinate at which s can be placed,
// in board order.
func (b *Board) LegalOrigins(s Grid) []Coord {
	var out []Coord
	for _, cell := range b.cells {
		if b.CanPlace(cell.coord, s) {
			out = append(out, cell.coord)
		}
	}
	return out
}

// lineRange returns the valid line indices [lo, hi) on an axis.
func (b *Board) lineRange(axis Axis) (int, int) {
	if axis == AxisJ {
		return 1 - b.radius, b.radius
	}
	return 0, b.radius*2 - 1
}

func lineOf(c Coord, axis Axis) int {
	switch axis {
	case AxisI:
		return c.LineI()
	case AxisJ:
		return c.LineJ()
	default:
		return c.LineK()
	}
}

// LineFull reports whether every cell on the given line is occupied.
// Lines with no cells are not full.
func (b *Board) LineFull(axis Axis, line int) bool {
	seen := false
	for _, c := range b.cells {
		if lineOf(c.coord, axis) != line {
			continue
		}
		if !c.occupied {
			return false
		}
		seen = true
	}
	return seen
}

// CanEliminate reports whether any line on any axis is full.
func (b *Board) CanEliminate() bool {
	for _, axis := range []Axis{AxisI, AxisJ, AxisK} {
		lo, hi := b.lineRange(axis)
		for line := lo; line < hi; line++ {
			if b.LineFull(axis, line) {
				return true
			}
		}
	}
	return false
}

// Eliminate clears every full line on the I, J and K axes.
//
// All three axes are judged on the board as it was before the call; clearing
// one line never makes another line eligible within the same call. A cell on
// several full lines is cleared and reported once. The returned cells are
// copies taken before clearing, in discovery order: I lines, then J, then K,
// board order within each line.
func (b *Board) Eliminate() []Cell {
	marked := make([]bool, len(b.cells))
	var order []int
	for _, axis := range []Axis{AxisI, AxisJ, AxisK} {
		lo, hi := b.lineRange(axis)
		for line := lo; line < hi; line++ {
			if !b.LineFull(axis, line) {
				continue
			}
			for i, c := range b.cells {
				if lineOf(c.coord, axis) == line && !marked[i] {
					marked[i] = true
					order = append(order, i)
				}
			}
		}
	}

	removed := make([]Cell, 0, len(order))
	for _, i := range order {
		removed = append(removed, b.cells[i])
	}
	for _, i := range order {
		b.cells[i].occupied = false
		b.cells[i].color = ColorEmpty
	}
	return removed
}

// Trial applies s at origin and an elimination pass to a copy of the board.
// The receiver is not modified.
func (b *Board) Trial(origin Coord, s Grid) (*Board, []Cell, error) {
	trial := b.Clone()
	if err := trial.Place(origin, s); err != nil {
		return nil, nil, err
	}
	removed := trial.Eliminate()
	return trial, removed, nil
}

// Booleans returns the occupancy of every cell in board order.
func (b *Board) Booleans() []bool {
	out := make([]bool, len(b.cells))
	for i, c := range b.cells {
		out[i] = c.occupied
	}
	return out
}

// String returns a compact dump of the board.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("Board{")
	for i, c := range b.cells {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "{%d,%d,%d,%t}", c.LineI(), c.LineJ(), c.LineK(), c.occupied)
	}
	sb.WriteString("}")
	return sb.String()
}

// index returns the slot of c, or -1 when c is off the board.
func (b *Board) index(c Coord) int {
	if !b.Contains(c) {
		return -1
	}
	return b.search(c.LineI(), c.LineK())
}

// search is a binary search over the (LineI, LineK) order.
func (b *Board) search(i, k int) int {
	lo, hi := 0, len(b.cells)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		ci, ck := b.cells[mid].LineI(), b.cells[mid].LineK()
		switch {
		case ci == i && ck == k:
			return mid
		case ci < i || (ci == i && ck < k):
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// Compile-time interface checks.
var (
	_ Grid = (*Board)(nil)
	_ Grid = (*Shape)(nil)
)
