package hex

// Grid is a collection of cells addressed by line coordinates.
// Shape and Board implement it.
type Grid interface {
	// Len returns the number of slots. Use with Get(ByIndex(i)) to iterate.
	Len() int

	// Cells returns the cells of the grid in canonical (LineI, LineK) order.
	Cells() []Cell

	// Contains reports whether the coordinate belongs to the grid.
	Contains(c Coord) bool

	// Get returns the cell addressed by ref, or false when there is none.
	Get(ref Ref) (Cell, bool)

	// Merge adds the occupied cells of other, translated by origin.
	Merge(origin Coord, other Grid) error
}

// Ref addresses a grid cell either by slot index or by coordinate.
type Ref struct {
	index   int
	coord   Coord
	byIndex bool
}

// ByIndex refers to the i-th slot of a grid.
func ByIndex(i int) Ref { return Ref{index: i, byIndex: true} }

// ByCoord refers to the cell at a coordinate.
func ByCoord(c Coord) Ref { return Ref{coord: c} }

// Index returns the slot index and whether the ref is index-based.
func (r Ref) Index() (int, bool) { return r.index, r.byIndex }

// Coord returns the coordinate and whether the ref is coordinate-based.
func (r Ref) Coord() (Coord, bool) { return r.coord, !r.byIndex }

// neighborOffsets are the six line-index offsets around a cell.
var neighborOffsets = [6][2]int{
	{-1, -1},
	{-1, 0},
	{0, -1},
	{0, 1},
	{1, 0},
	{1, 1},
}

// Neighbors returns the six coordinates adjacent to c.
func Neighbors(c Coord) [6]Coord {
	var out [6]Coord
	i, k := c.LineI(), c.LineK()
	for n, off := range neighborOffsets {
		out[n] = At(i+off[0], k+off[1])
	}
	return out
}

// CountNeighbors counts the occupied cells around c in g.
// Neighbors outside the grid count as occupied when outsideOccupied is set.
// Returns 0 when c itself is not part of the grid.
func CountNeighbors(g Grid, c Coord, outsideOccupied bool) int {
	if !g.Contains(c) {
		return 0
	}
	count := 0
	for _, n := range Neighbors(c) {
		if !g.Contains(n) {
			if outsideOccupied {
				count++
			}
			continue
		}
		cell, ok := g.Get(ByCoord(n))
		if ok && cell.Occupied() {
			count++
		} else if !ok && outsideOccupied {
			count++
		}
	}
	return count
}
