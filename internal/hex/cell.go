package hex

import "fmt"

// Reserved color indices. Palette colors are 0 and above.
const (
	ColorEmpty  = -1 // unoccupied board cell
	ColorFilled = -2 // occupied without a palette color
)

// Cell is a coordinate with a color tag and an occupancy flag.
type Cell struct {
	coord    Coord
	color    int
	occupied bool
}

// NewCell creates a cell at c.
func NewCell(c Coord, color int, occupied bool) Cell {
	return Cell{coord: c, color: color, occupied: occupied}
}

// EmptyCell creates an unoccupied cell at c.
func EmptyCell(c Coord) Cell {
	return Cell{coord: c, color: ColorEmpty}
}

// CellAt creates an unoccupied cell at line indices (i, k) with a color.
func CellAt(i, k, color int) Cell {
	return Cell{coord: At(i, k), color: color}
}

// Pos returns the cell's coordinate.
func (c Cell) Pos() Coord { return c.coord }

// LineI returns the I line index of the cell.
func (c Cell) LineI() int { return c.coord.LineI() }

// LineJ returns the J line index of the cell.
func (c Cell) LineJ() int { return c.coord.LineJ() }

// LineK returns the K line index of the cell.
func (c Cell) LineK() int { return c.coord.LineK() }

// Color returns the color index.
func (c Cell) Color() int { return c.color }

// Occupied reports whether the cell is filled.
func (c Cell) Occupied() bool { return c.occupied }

// SetColor sets the color index.
func (c *Cell) SetColor(color int) { c.color = color }

// SetOccupied sets the occupancy flag.
func (c *Cell) SetOccupied(occupied bool) { c.occupied = occupied }

// Toggle flips the occupancy flag.
func (c *Cell) Toggle() { c.occupied = !c.occupied }

// Moved returns a copy of the cell relocated to pos, keeping color and state.
func (c Cell) Moved(pos Coord) Cell {
	c.coord = pos
	return c
}

// Add returns a copy translated by p. Color and state come from c.
func (c Cell) Add(p Point) Cell {
	return c.Moved(c.coord.Add(p.Pos()))
}

// Sub returns a copy translated by -p. Color and state come from c.
func (c Cell) Sub(p Point) Cell {
	return c.Moved(c.coord.Sub(p.Pos()))
}

func (Cell) point() {}

// String returns a debug representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("Cell{%d,%d,%d color=%d occupied=%t}",
		c.LineI(), c.LineJ(), c.LineK(), c.color, c.occupied)
}

// Point is anything with a lattice position: a bare Coord or a Cell.
type Point interface {
	Pos() Coord
	point()
}

// Combine adds two points. When either operand is a Cell the result is a Cell
// carrying that operand's color and state, whichever side it was on; two
// cells keep the left one's. Two coordinates give a Coord.
func Combine(a, b Point) Point {
	sum := a.Pos().Add(b.Pos())
	if cell, ok := a.(Cell); ok {
		return cell.Moved(sum)
	}
	if cell, ok := b.(Cell); ok {
		return cell.Moved(sum)
	}
	return sum
}
