// Package hex provides the board engine for the hexagonal block puzzle:
// the axial coordinate system, cells, placeable shapes, the sorted board
// and the read-only scoring primitives used by placement heuristics.
// It has no dependencies outside the standard library and never logs.
package hex

import (
	"fmt"
	"math"
)

// halfSin60 scales raw coordinates into rectangular space.
var halfSin60 = math.Sqrt(3) / 4

// Coord is a position in the hexagonal lattice.
//
// Three axes I, J and K run diagonally through the grid. A coordinate stores
// two raw basis values (x, y) with I = x, K = y and J = x + y, so that
// I - J + K = 0. Raw values measure twice the distance along an axis; the
// preferred representation is the line index on each axis, which is what
// At takes and what LineI/LineJ/LineK return.
type Coord struct {
	x int
	y int
}

// At returns the coordinate at line indices (i, k).
func At(i, k int) Coord {
	return Coord{x: 2*k - i, y: 2*i - k}
}

// I returns the raw I value.
func (c Coord) I() int { return c.x }

// J returns the raw J value.
func (c Coord) J() int { return c.x + c.y }

// K returns the raw K value.
func (c Coord) K() int { return c.y }

// LineI returns the line index along the I axis.
func (c Coord) LineI() int { return floorDiv(2*c.y+c.x, 3) }

// LineJ returns the line index along the J axis.
func (c Coord) LineJ() int { return floorDiv(c.x-c.y, 3) }

// LineK returns the line index along the K axis.
func (c Coord) LineK() int { return floorDiv(2*c.x+c.y, 3) }

// InLineI reports whether the coordinate lies on I line.
func (c Coord) InLineI(line int) bool { return c.LineI() == line }

// InLineJ reports whether the coordinate lies on J line.
func (c Coord) InLineJ(line int) bool { return c.LineJ() == line }

// InLineK reports whether the coordinate lies on K line.
func (c Coord) InLineK(line int) bool { return c.LineK() == line }

// MoveI moves the coordinate along the I axis in place.
func (c *Coord) MoveI(unit int) {
	c.x += 2 * unit
	c.y -= unit
}

// MoveJ moves the coordinate along the J axis in place.
func (c *Coord) MoveJ(unit int) {
	c.x += unit
	c.y += unit
}

// MoveK moves the coordinate along the K axis in place.
func (c *Coord) MoveK(unit int) {
	c.x -= unit
	c.y += 2 * unit
}

// ShiftI returns a copy moved along the I axis.
func (c Coord) ShiftI(unit int) Coord {
	c.MoveI(unit)
	return c
}

// ShiftJ returns a copy moved along the J axis.
func (c Coord) ShiftJ(unit int) Coord {
	c.MoveJ(unit)
	return c
}

// ShiftK returns a copy moved along the K axis.
func (c Coord) ShiftK(unit int) Coord {
	c.MoveK(unit)
	return c
}

// Add returns the vector sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{x: c.x + other.x, y: c.y + other.y}
}

// Sub returns the vector difference of two coordinates.
func (c Coord) Sub(other Coord) Coord {
	return Coord{x: c.x - other.x, y: c.y - other.y}
}

// FrontI reports whether c is one unit ahead of other on the I axis.
func (c Coord) FrontI(other Coord) bool { return c.x == other.x+2 && c.y == other.y-1 }

// FrontJ reports whether c is one unit ahead of other on the J axis.
func (c Coord) FrontJ(other Coord) bool { return c.x == other.x+1 && c.y == other.y+1 }

// FrontK reports whether c is one unit ahead of other on the K axis.
func (c Coord) FrontK(other Coord) bool { return c.x == other.x-1 && c.y == other.y+2 }

// BackI reports whether c is one unit behind other on the I axis.
func (c Coord) BackI(other Coord) bool { return c.x == other.x-2 && c.y == other.y+1 }

// BackJ reports whether c is one unit behind other on the J axis.
func (c Coord) BackJ(other Coord) bool { return c.x == other.x-1 && c.y == other.y-1 }

// BackK reports whether c is one unit behind other on the K axis.
func (c Coord) BackK(other Coord) bool { return c.x == other.x+1 && c.y == other.y-2 }

// Front reports whether c is ahead of other on any axis.
func (c Coord) Front(other Coord) bool {
	return c.FrontI(other) || c.FrontJ(other) || c.FrontK(other)
}

// Back reports whether c is behind other on any axis.
func (c Coord) Back(other Coord) bool {
	return c.BackI(other) || c.BackJ(other) || c.BackK(other)
}

// Adjacent reports whether the two coordinates are neighbors.
func (c Coord) Adjacent(other Coord) bool {
	return c.Front(other) || c.Back(other)
}

// InRange reports whether the coordinate lies on a board of the given radius
// whose leftmost cell is the origin.
func (c Coord) InRange(radius int) bool {
	i, j, k := c.LineI(), c.LineJ(), c.LineK()
	return 0 <= i && i < radius*2-1 &&
		-radius < j && j < radius &&
		0 <= k && k < radius*2-1
}

// X returns the rectangular x position of the coordinate.
func (c Coord) X() float64 { return halfSin60 * float64(c.x+c.y) }

// Y returns the rectangular y position of the coordinate.
func (c Coord) Y() float64 { return float64(c.x-c.y) / 4.0 }

// Pos returns the coordinate itself. It makes Coord a Point.
func (c Coord) Pos() Coord { return c }

func (Coord) point() {}

// String returns the line indices of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.LineI(), c.LineK())
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
