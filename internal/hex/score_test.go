package hex

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func invert(b *Board) *Board {
	out := b.Clone()
	for i, occupied := range b.Booleans() {
		out.SetStateAt(i, !occupied)
	}
	return out
}

func TestEntropyUniformBoards(t *testing.T) {
	for _, radius := range []int{1, 2, 3, 6} {
		b := NewBoard(radius)
		if got := b.Entropy(); got != 0 {
			t.Errorf("empty radius %d: Entropy() = %v", radius, got)
		}
		for i := range b.Len() {
			b.SetStateAt(i, true)
		}
		if got := b.Entropy(); got != 0 {
			t.Errorf("full radius %d: Entropy() = %v", radius, got)
		}
	}
}

func TestEntropyInversion(t *testing.T) {
	b := NewBoard(6)
	for i := 0; i < b.Len(); i++ {
		if i%3 == 0 || i%7 == 1 {
			b.SetStateAt(i, true)
		}
	}

	h := b.Entropy()
	if h <= 0 || h > 7 {
		t.Fatalf("mixed board entropy = %v, expected in (0, 7]", h)
	}
	if inv := invert(b).Entropy(); math.Abs(h-inv) > epsilon {
		t.Errorf("Entropy() = %v, inverted = %v", h, inv)
	}
}

func TestEntropyTwoPatterns(t *testing.T) {
	// Radius 3 samples the 7 cells around the center. Filling only the
	// center gives one sample with pattern 0b0001000 and six samples with
	// a single neighbor bit: seven distinct patterns.
	b := NewBoard(3)
	b.SetState(At(2, 2), true)
	if got := b.Entropy(); math.Abs(got-math.Log2(7)) > epsilon {
		t.Errorf("Entropy() = %v, expected log2(7)", got)
	}
}

func TestDensityIndex(t *testing.T) {
	uno := ShapeOf(0, At(0, 0))

	tests := []struct {
		name     string
		setup    func(b *Board)
		origin   Coord
		expected float64
	}{
		{"open center", func(b *Board) {}, At(2, 2), 0},
		{"corner", func(b *Board) {}, At(0, 0), 0.5},
		{"edge", func(b *Board) {}, At(0, 1), 2.0 / 6.0},
		{
			name: "surrounded",
			setup: func(b *Board) {
				for _, n := range Neighbors(At(2, 2)) {
					b.SetState(n, true)
				}
			},
			origin:   At(2, 2),
			expected: 1,
		},
		{"overlap", func(b *Board) { b.SetState(At(2, 2), true) }, At(2, 2), 0},
		{"outside", func(b *Board) {}, At(5, 5), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(3)
			tc.setup(b)
			if got := b.DensityIndex(tc.origin, uno); math.Abs(got-tc.expected) > epsilon {
				t.Errorf("DensityIndex() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDensityIndexRange(t *testing.T) {
	b := NewBoard(4)
	for i := 0; i < b.Len(); i += 4 {
		b.SetStateAt(i, true)
	}

	for mask := 1; mask <= 127; mask++ {
		s, _ := ShapeFromMask(byte(mask), 0)
		for _, cell := range b.Cells() {
			d := b.DensityIndex(cell.Pos(), s)
			if d < 0 || d > 1 {
				t.Fatalf("mask %d at %v: density %v out of [0,1]", mask, cell.Pos(), d)
			}
			if !b.CanPlace(cell.Pos(), s) && d != 0 {
				t.Fatalf("mask %d at %v: invalid placement rated %v", mask, cell.Pos(), d)
			}
		}
	}
}

func TestDensityIgnoresInnerSides(t *testing.T) {
	// A pair has 10 open sides. In the corner of an empty radius 3 board,
	// (0,0) touches 3 edges and (0,1) touches 2.
	pair := ShapeOf(0, At(0, 0), At(0, 1))
	b := NewBoard(3)
	if got := b.DensityIndex(At(0, 0), pair); math.Abs(got-0.5) > epsilon {
		t.Errorf("DensityIndex() = %v, expected 0.5", got)
	}
}

func TestLogistic(t *testing.T) {
	if got := Logistic(0, EntropySteepness); got != 0.5 {
		t.Errorf("Logistic(0) = %v", got)
	}
	if Logistic(10, 3) < 0.999 || Logistic(-10, 3) > 0.001 {
		t.Error("Logistic should saturate")
	}
	if Logistic(1, 3) <= Logistic(0.5, 3) {
		t.Error("Logistic should be increasing")
	}
}

func TestEntropyIndex(t *testing.T) {
	b := NewBoard(3)
	uno := ShapeOf(0, At(0, 0))

	got, err := b.EntropyIndex(At(2, 2), uno)
	if err != nil {
		t.Fatalf("EntropyIndex: %v", err)
	}
	// Empty board entropy 0; one filled center gives log2(7).
	expected := Logistic(math.Log2(7)-EntropyOffset, EntropySteepness)
	if math.Abs(got-expected) > epsilon {
		t.Errorf("EntropyIndex() = %v, expected %v", got, expected)
	}
	if b.Filled() != 0 {
		t.Error("EntropyIndex modified the board")
	}

	w, err := b.WeightedIndex(At(2, 2), uno, math.Log2(7))
	if err != nil {
		t.Fatalf("WeightedIndex: %v", err)
	}
	if math.Abs(w-Logistic(-EntropyOffset, EntropySteepness)) > epsilon {
		t.Errorf("WeightedIndex() = %v", w)
	}

	b.SetState(At(2, 2), true)
	if _, err := b.EntropyIndex(At(2, 2), uno); !errors.Is(err, ErrValidation) {
		t.Errorf("EntropyIndex on overlap error = %v", err)
	}
}
