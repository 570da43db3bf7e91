package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", s.Width())
	}
	if s.Height() != 4 {
		t.Errorf("Height() = %d, expected 4", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}

	if s := NewScreen(-1, -1); s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected red", s.GetCell(5, 5).Color)
	}

	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorBlue)
	s.Clear()
	if got := s.String(); got != "\n" {
		t.Errorf("String() after Clear = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(2, 0, "héllo", ColorGreen)

	if got := s.Row(0); got != "  héll" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}

	small := NewScreen(3, 3)
	small.DrawBox(NewRect(0, 0, 1, 1), ColorGray)
	if small.Get(0, 0) != ' ' {
		t.Error("degenerate box should draw nothing")
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 3, 4, true},
		{"top-left corner", 2, 3, true},
		{"right edge (exclusive)", 6, 4, false},
		{"above", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(4, 0, 10) != 4 {
		t.Error("Clamp mismatch")
	}
}

func TestCellColor(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected Color
	}{
		{"empty", -1, ColorDim},
		{"filled", -2, ColorGray},
		{"first", 0, DefaultPalette[0]},
		{"wraps", len(DefaultPalette), DefaultPalette[0]},
		{"last", len(DefaultPalette) - 1, DefaultPalette[len(DefaultPalette)-1]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellColor(tc.index); got != tc.expected {
				t.Errorf("CellColor(%d) = %d, expected %d", tc.index, got, tc.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Radius != 5 || cfg.QueueSize != 3 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	w := cfg.Weights
	if w.Density != 4 || w.Elimination != 5 || w.Entropy != 7 {
		t.Errorf("DefaultWeights() = %+v", w)
	}
}
