package hex

import (
	"errors"
	"slices"
	"testing"
)

func TestBoardCellCount(t *testing.T) {
	tests := []struct {
		radius   int
		expected int
	}{
		{1, 1},
		{2, 7},
		{3, 19},
		{5, 61},
		{8, 169},
	}

	for _, tc := range tests {
		b := NewBoard(tc.radius)
		if b.Len() != tc.expected {
			t.Errorf("NewBoard(%d).Len() = %d, expected %d", tc.radius, b.Len(), tc.expected)
		}
		if CellCount(tc.radius) != tc.expected {
			t.Errorf("CellCount(%d) = %d, expected %d", tc.radius, CellCount(tc.radius), tc.expected)
		}
	}

	if b := NewBoard(-3); b.Radius() != 1 || b.Len() != 1 {
		t.Errorf("NewBoard(-3) = radius %d, %d cells", b.Radius(), b.Len())
	}
}

func TestBoardSortedOrder(t *testing.T) {
	b := NewBoard(6)
	cells := b.Cells()
	for n := 1; n < len(cells); n++ {
		if !less(cells[n-1], cells[n]) {
			t.Fatalf("cells %v and %v out of order", cells[n-1], cells[n])
		}
	}
	for n, c := range cells {
		if !c.Pos().InRange(6) {
			t.Errorf("cell %v not in range", c)
		}
		if b.index(c.Pos()) != n {
			t.Errorf("index(%v) = %d, expected %d", c.Pos(), b.index(c.Pos()), n)
		}
	}
}

func TestBoardLookup(t *testing.T) {
	b := NewBoard(4)
	for i := -2; i < 10; i++ {
		for k := -2; k < 10; k++ {
			c := At(i, k)
			cell, ok := b.Get(ByCoord(c))
			if ok != c.InRange(4) {
				t.Errorf("Get(%v) found = %t, in range = %t", c, ok, c.InRange(4))
			}
			if ok && cell.Pos() != c {
				t.Errorf("Get(%v) returned %v", c, cell.Pos())
			}
		}
	}
	if _, ok := b.Get(ByIndex(b.Len())); ok {
		t.Error("Get past the end should fail")
	}
	if cell, ok := b.Get(ByIndex(0)); !ok || cell.Pos() != At(0, 0) {
		t.Errorf("Get(ByIndex(0)) = %v, %t", cell, ok)
	}
}

func TestPlaceSingleCell(t *testing.T) {
	uno := ShapeOf(3, At(0, 0))
	for _, cell := range NewBoard(2).Cells() {
		b := NewBoard(2)
		if err := b.Place(cell.Pos(), uno); err != nil {
			t.Fatalf("Place at %v: %v", cell.Pos(), err)
		}
		if b.Filled() != 1 {
			t.Errorf("Place at %v: %d cells filled", cell.Pos(), b.Filled())
		}
		got, _ := b.Get(ByCoord(cell.Pos()))
		if !got.Occupied() || got.Color() != 3 {
			t.Errorf("Place at %v: cell = %v", cell.Pos(), got)
		}
	}
}

func TestCanPlace(t *testing.T) {
	b := NewBoard(3)
	b.SetState(At(2, 2), true)
	pair := ShapeOf(0, At(0, 0), At(0, 1))

	tests := []struct {
		name     string
		origin   Coord
		expected bool
	}{
		{"free", At(0, 0), true},
		{"overlap", At(2, 1), false},
		{"overlap at origin", At(2, 2), false},
		{"outside", At(0, 2), false},
		{"origin off board", At(-1, 0), false},
		{"next to filled", At(2, 3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CanPlace(tc.origin, pair); got != tc.expected {
				t.Errorf("CanPlace(%v) = %v, expected %v", tc.origin, got, tc.expected)
			}
		})
	}
}

func TestPlaceIsAtomic(t *testing.T) {
	b := NewBoard(3)
	b.SetState(At(1, 2), true)
	before := b.Cells()

	// First cell fits, last one overlaps.
	line := ShapeOf(4, At(0, 0), At(0, 1), At(0, 2))
	err := b.Place(At(1, 0), line)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Place error = %v, expected ErrValidation", err)
	}
	var perr *PlacementError
	if !errors.As(err, &perr) || perr.Reason != ReasonOverlap || perr.Target != At(1, 2) {
		t.Errorf("PlacementError = %+v", perr)
	}
	if !slices.Equal(before, b.Cells()) {
		t.Error("failed placement modified the board")
	}

	err = b.Place(At(4, 3), line)
	if !errors.As(err, &perr) || perr.Reason != ReasonOutOfRange {
		t.Errorf("expected out of range, got %v", err)
	}
	if !slices.Equal(before, b.Cells()) {
		t.Error("failed placement modified the board")
	}
}

func TestLegalOrigins(t *testing.T) {
	b := NewBoard(2)

	uno := ShapeOf(0, At(0, 0))
	origins := b.LegalOrigins(uno)
	if len(origins) != 7 {
		t.Fatalf("uno origins = %v, expected 7", origins)
	}
	for n, cell := range b.Cells() {
		if origins[n] != cell.Pos() {
			t.Errorf("origin %d = %v, expected %v", n, origins[n], cell.Pos())
		}
	}

	line := ShapeOf(0, At(0, -1), At(0, 0), At(0, 1))
	if got := b.LegalOrigins(line); !slices.Equal(got, []Coord{At(1, 1)}) {
		t.Errorf("line origins = %v, expected [(1,1)]", got)
	}

	b.SetState(At(1, 1), true)
	if got := b.LegalOrigins(line); len(got) != 0 {
		t.Errorf("line origins on blocked board = %v, expected none", got)
	}
}

func TestEliminateFullBoard(t *testing.T) {
	b := NewBoard(2)
	for i := range b.Len() {
		b.SetStateAt(i, true)
	}

	removed := b.Eliminate()
	if len(removed) != 7 {
		t.Fatalf("removed %d cells, expected 7", len(removed))
	}
	seen := map[Coord]bool{}
	for _, c := range removed {
		if seen[c.Pos()] {
			t.Errorf("cell %v reported twice", c.Pos())
		}
		seen[c.Pos()] = true
		if !c.Occupied() {
			t.Errorf("removed snapshot %v should be taken before clearing", c)
		}
	}
	if b.Filled() != 0 {
		t.Errorf("%d cells left filled", b.Filled())
	}
	for _, c := range b.Cells() {
		if c.Color() != ColorEmpty {
			t.Errorf("cell %v color not reset", c)
		}
	}
}

func TestEliminateLines(t *testing.T) {
	b := NewBoard(2)
	b.SetState(At(0, 0), true)
	b.SetState(At(0, 1), true)
	b.SetState(At(1, 0), true)
	b.SetState(At(2, 2), true)

	if !b.CanEliminate() {
		t.Fatal("CanEliminate should be true")
	}
	if !b.LineFull(AxisI, 0) || !b.LineFull(AxisK, 0) || b.LineFull(AxisJ, 0) {
		t.Error("LineFull mismatch")
	}

	removed := b.Eliminate()
	expected := []Coord{At(0, 0), At(0, 1), At(1, 0)}
	if len(removed) != len(expected) {
		t.Fatalf("removed %v, expected %v", removed, expected)
	}
	for n, c := range removed {
		if c.Pos() != expected[n] {
			t.Errorf("removed[%d] = %v, expected %v", n, c.Pos(), expected[n])
		}
	}
	if !b.Occupied(At(2, 2)) || b.Filled() != 1 {
		t.Error("cells off the full lines should stay")
	}
	if b.CanEliminate() {
		t.Error("nothing left to eliminate")
	}
	if got := b.Eliminate(); len(got) != 0 {
		t.Errorf("second Eliminate removed %v", got)
	}
}

func TestEliminateJLine(t *testing.T) {
	b := NewBoard(3)
	// J line 0 is the long diagonal (0,0)..(4,4).
	for n := range 5 {
		b.SetState(At(n, n), true)
	}
	if !b.LineFull(AxisJ, 0) {
		t.Fatal("J line 0 should be full")
	}
	if got := b.Eliminate(); len(got) != 5 {
		t.Errorf("removed %d cells, expected 5", len(got))
	}
}

func TestSetState(t *testing.T) {
	b := NewBoard(2)
	b.SetState(At(1, 1), true)
	cell, _ := b.Get(ByCoord(At(1, 1)))
	if !cell.Occupied() || cell.Color() != ColorFilled {
		t.Errorf("filled cell = %v", cell)
	}

	b.SetColorAt(3, 7)
	cell, _ = b.Get(ByIndex(3))
	if cell.Color() != 7 || !cell.Occupied() {
		t.Errorf("colored cell = %v", cell)
	}

	b.SetState(At(1, 1), false)
	cell, _ = b.Get(ByCoord(At(1, 1)))
	if cell.Occupied() || cell.Color() != ColorEmpty {
		t.Errorf("cleared cell = %v", cell)
	}

	b.SetState(At(9, 9), true)
	if b.Filled() != 0 {
		t.Error("off-board SetState should be ignored")
	}
}

func TestCloneAndReset(t *testing.T) {
	b := NewBoard(3)
	b.SetState(At(2, 2), true)

	c := b.Clone()
	c.SetState(At(0, 0), true)
	if b.Occupied(At(0, 0)) {
		t.Error("clone shares storage with original")
	}
	if c.Filled() != 2 || c.Radius() != 3 {
		t.Errorf("clone = %d filled, radius %d", c.Filled(), c.Radius())
	}

	c.Reset()
	if c.Filled() != 0 || c.Len() != 19 {
		t.Errorf("reset board = %d filled, %d cells", c.Filled(), c.Len())
	}
	if b.Filled() != 1 {
		t.Error("reset of clone changed original")
	}
}

func TestFilledRatio(t *testing.T) {
	b := NewBoard(2)
	b.SetStateAt(0, true)
	b.SetStateAt(1, true)
	if got := b.FilledRatio(); got != 2.0/7.0 {
		t.Errorf("FilledRatio() = %v, expected 2/7", got)
	}
}

func TestTrial(t *testing.T) {
	b := NewBoard(2)
	b.SetState(At(0, 0), true)

	trial, removed, err := b.Trial(At(0, 1), ShapeOf(0, At(0, 0)))
	if err != nil {
		t.Fatalf("Trial: %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("trial removed %d cells, expected 2", len(removed))
	}
	if trial.Filled() != 0 {
		t.Errorf("trial board has %d filled", trial.Filled())
	}
	if b.Filled() != 1 || b.Occupied(At(0, 1)) {
		t.Error("Trial modified the receiver")
	}

	if _, _, err := b.Trial(At(0, 0), ShapeOf(0, At(0, 0))); !errors.Is(err, ErrValidation) {
		t.Errorf("Trial overlap error = %v", err)
	}
}

func TestSolveRadius(t *testing.T) {
	tests := []struct {
		length   int
		expected int
	}{
		{1, 1},
		{7, 2},
		{19, 3},
		{61, 5},
		{0, -1},
		{4, -1},
		{8, -1},
		{60, -1},
	}

	for _, tc := range tests {
		if got := SolveRadius(tc.length); got != tc.expected {
			t.Errorf("SolveRadius(%d) = %d, expected %d", tc.length, got, tc.expected)
		}
	}
}

func TestBooleansRoundTrip(t *testing.T) {
	b := NewBoard(4)
	for i := 0; i < b.Len(); i += 3 {
		b.SetStateAt(i, true)
	}

	data := b.Booleans()
	if len(data) != 37 {
		t.Fatalf("len(Booleans()) = %d, expected 37", len(data))
	}

	rebuilt, err := BoardFromBooleans(data)
	if err != nil {
		t.Fatalf("BoardFromBooleans: %v", err)
	}
	if rebuilt.Radius() != 4 || !slices.Equal(rebuilt.Booleans(), data) {
		t.Error("round trip changed the board")
	}

	if _, err := BoardFromBooleans(make([]bool, 8)); !errors.Is(err, ErrEncoding) {
		t.Errorf("bad length error = %v, expected ErrEncoding", err)
	}
}

func TestCanPlaceDoesNotAllocate(t *testing.T) {
	b := NewBoard(4)
	s := ShapeOf(0, At(0, 0), At(0, 1), At(1, 1))

	allocs := testing.AllocsPerRun(100, func() {
		if !b.CanPlace(At(2, 2), s) {
			t.Fatal("CanPlace should accept a free origin")
		}
	})
	if allocs != 0 {
		t.Errorf("CanPlace allocated %v times per call", allocs)
	}

	if err := b.Place(At(2, 2), s); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if b.Filled() != 3 || !b.Occupied(At(3, 3)) {
		t.Errorf("board after Place: %v", b)
	}
}

func TestCanPlaceRejectsWithoutAllocating(t *testing.T) {
	b := NewBoard(2)
	s := ShapeOf(0, At(0, 0), At(0, 1))

	allocs := testing.AllocsPerRun(100, func() {
		if b.CanPlace(At(4, 4), s) {
			t.Fatal("CanPlace should reject an off-board origin")
		}
	})
	if allocs != 0 {
		t.Errorf("rejecting CanPlace allocated %v times per call", allocs)
	}
}
