package hex

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// maskOrder lists the seven positions of the canonical shape encoding,
// from the most significant used bit (bit 6) down to bit 0.
var maskOrder = [7][2]int{
	{-1, -1},
	{-1, 0},
	{0, -1},
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

// Shape is a small placeable piece: a fixed number of slots holding cells
// that share one color. Cells are kept sorted by (LineI, LineK).
//
// Once every slot is filled a shape should be treated as immutable; build a
// new one instead of editing it.
type Shape struct {
	capacity int
	color    int
	cells    []Cell
}

// NewShape creates an empty shape with the given capacity (at least 1).
func NewShape(capacity, color int) *Shape {
	if capacity < 1 {
		capacity = 1
	}
	return &Shape{
		capacity: capacity,
		color:    color,
		cells:    make([]Cell, 0, capacity),
	}
}

// ShapeOf builds a full shape from line coordinates.
func ShapeOf(color int, coords ...Coord) *Shape {
	s := NewShape(len(coords), color)
	for _, c := range coords {
		s.AddCoord(c)
	}
	return s
}

// ShapeFromMask decodes the 7-bit canonical encoding. Bits above bit 6 are
// ignored. A mask without any of the seven bits set is an ErrEncoding.
func ShapeFromMask(mask byte, color int) (*Shape, error) {
	m := mask & 0x7F
	if m == 0 {
		return nil, fmt.Errorf("%w: mask %#02x has no blocks", ErrEncoding, mask)
	}
	s := NewShape(bits.OnesCount8(m), color)
	for n, pos := range maskOrder {
		if m>>(6-n)&1 == 1 {
			s.AddCoord(At(pos[0], pos[1]))
		}
	}
	return s, nil
}

// AddCell stores a copy of cell in the first free slot, stamped with the
// shape's color and marked occupied. Returns false when the shape is full
// or already has a cell at that coordinate.
func (s *Shape) AddCell(cell Cell) bool {
	if len(s.cells) >= s.capacity {
		return false
	}
	if _, ok := s.find(cell.coord); ok {
		return false
	}
	cell.color = s.color
	cell.occupied = true

	// Insertion keeps the canonical order.
	s.cells = append(s.cells, cell)
	for j := len(s.cells) - 1; j > 0 && less(s.cells[j], s.cells[j-1]); j-- {
		s.cells[j], s.cells[j-1] = s.cells[j-1], s.cells[j]
	}
	return true
}

// AddCoord creates a cell at c and adds it. Returns false when full or
// when c is already taken.
func (s *Shape) AddCoord(c Coord) bool {
	return s.AddCell(EmptyCell(At(c.LineI(), c.LineK())))
}

// Color returns the shape's color index.
func (s *Shape) Color() int { return s.color }

// SetColor recolors the shape and every cell in it.
func (s *Shape) SetColor(color int) {
	s.color = color
	for i := range s.cells {
		s.cells[i].color = color
	}
}

// Len returns the capacity of the shape.
func (s *Shape) Len() int { return s.capacity }

// Count returns the number of occupied slots.
func (s *Shape) Count() int { return len(s.cells) }

// Full reports whether every slot holds a cell.
func (s *Shape) Full() bool { return len(s.cells) == s.capacity }

// Cells returns copies of the occupied cells in canonical order.
func (s *Shape) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Contains reports whether the shape has a cell at c.
func (s *Shape) Contains(c Coord) bool {
	_, ok := s.find(c)
	return ok
}

// Get returns the cell at a slot index or coordinate.
// Empty slots are reported as missing.
func (s *Shape) Get(ref Ref) (Cell, bool) {
	if i, ok := ref.Index(); ok {
		if i < 0 || i >= len(s.cells) {
			return Cell{}, false
		}
		return s.cells[i], true
	}
	c, _ := ref.Coord()
	i, ok := s.find(c)
	if !ok {
		return Cell{}, false
	}
	return s.cells[i], true
}

// Merge always fails: shapes are built cell by cell.
func (s *Shape) Merge(origin Coord, other Grid) error {
	return ErrShapeMerge
}

// Equal reports whether two shapes occupy the same coordinates.
// Color and capacity are ignored.
func (s *Shape) Equal(other *Shape) bool {
	if other == nil || len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if !sameLine(s.cells[i].coord, other.cells[i].coord) {
			return false
		}
	}
	return true
}

// Key returns a structural signature of the occupied coordinates.
// Two shapes have the same key exactly when they are Equal.
func (s *Shape) Key() string {
	var b strings.Builder
	for n, c := range s.cells {
		if n > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.LineI()))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.LineK()))
	}
	return b.String()
}

// Encodable reports whether every cell lies in the seven-cell neighborhood
// covered by Mask.
func (s *Shape) Encodable() bool {
	if len(s.cells) == 0 {
		return false
	}
	for _, c := range s.cells {
		i, k := c.LineI(), c.LineK()
		if i < -1 || i > 1 || k < -1 || k > 1 || i-k == 2 || k-i == 2 {
			return false
		}
	}
	return true
}

// Mask returns the 7-bit canonical encoding. Cells outside the seven
// positions are not recorded and color is dropped.
func (s *Shape) Mask() byte {
	var m byte
	for _, pos := range maskOrder {
		m <<= 1
		if s.Contains(At(pos[0], pos[1])) {
			m |= 1
		}
	}
	return m & 0x7F
}

// String returns the line coordinates of the shape's cells.
func (s *Shape) String() string {
	parts := make([]string, 0, s.capacity)
	for _, c := range s.cells {
		parts = append(parts, c.coord.String())
	}
	for i := len(s.cells); i < s.capacity; i++ {
		parts = append(parts, "null")
	}
	return "Shape{" + strings.Join(parts, ", ") + "}"
}

func (s *Shape) find(c Coord) (int, bool) {
	for i := range s.cells {
		if sameLine(s.cells[i].coord, c) {
			return i, true
		}
	}
	return 0, false
}

// less orders cells by (LineI, LineK).
func less(a, b Cell) bool {
	ai, bi := a.LineI(), b.LineI()
	if ai != bi {
		return ai < bi
	}
	return a.LineK() < b.LineK()
}

func sameLine(a, b Coord) bool {
	return a.LineI() == b.LineI() && a.LineK() == b.LineK()
}
