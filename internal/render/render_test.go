package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
)

func mustMask(t *testing.T, mask byte, color int) *hex.Shape {
	t.Helper()
	s, err := hex.ShapeFromMask(mask, color)
	if err != nil {
		t.Fatalf("ShapeFromMask(%d): %v", mask, err)
	}
	return s
}

func TestBoardSize(t *testing.T) {
	tests := []struct {
		radius int
		w, h   int
	}{
		{0, 1, 1},
		{1, 1, 1},
		{2, 5, 3},
		{5, 17, 9},
	}

	for _, tc := range tests {
		w, h := BoardSize(tc.radius)
		if w != tc.w || h != tc.h {
			t.Errorf("BoardSize(%d) = %dx%d, expected %dx%d", tc.radius, w, h, tc.w, tc.h)
		}
	}
}

func TestBoardLayoutCoversEveryCell(t *testing.T) {
	b := hex.NewBoard(5)
	w, h := BoardSize(5)
	seen := make(map[[2]int]bool)
	for _, c := range b.Cells() {
		x, y := boardPos(c.Pos(), 5)
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Fatalf("%v maps outside the screen to (%d, %d)", c.Pos(), x, y)
		}
		if seen[[2]int{x, y}] {
			t.Fatalf("%v shares position (%d, %d)", c.Pos(), x, y)
		}
		seen[[2]int{x, y}] = true
	}
}

func TestBoardPlain(t *testing.T) {
	b := hex.NewBoard(2)
	b.SetState(hex.At(0, 0), true)
	b.SetState(hex.At(2, 2), true)

	expected := " . .\n# . #\n . ."
	if got := Board(b, Options{Plain: true}); got != expected {
		t.Errorf("Board() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestDecisionPlain(t *testing.T) {
	b := hex.NewBoard(2)
	uno := mustMask(t, 8, 0)

	expected := " . .\n. @ .\n . ."
	if got := Decision(b, hex.At(1, 1), uno, Options{Plain: true}); got != expected {
		t.Errorf("Decision() =\n%s\nexpected\n%s", got, expected)
	}

	// Cells off the board are not drawn.
	if got := Decision(b, hex.At(2, 2), mustMask(t, 28, 0), Options{Plain: true}); strings.Count(got, "@") != 2 {
		t.Errorf("Decision() off the edge =\n%s", got)
	}
}

func TestQueuePlain(t *testing.T) {
	queue := []*hex.Shape{mustMask(t, 8, 0), mustMask(t, 28, 1)}

	w, h := QueueSize(queue)
	if w != 7 || h != 4 {
		t.Errorf("QueueSize() = %dx%d, expected 7x4", w, h)
	}

	expected := "#   #\n     #\n      #\n0   1"
	if got := Queue(queue, Options{Plain: true}); got != expected {
		t.Errorf("Queue() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestShapeSize(t *testing.T) {
	tests := []struct {
		name string
		mask byte
		w, h int
	}{
		{"uno", 8, 1, 1},
		{"line", 28, 3, 3},
		{"big block", 127, 5, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := ShapeSize(mustMask(t, tc.mask, 0))
			if w != tc.w || h != tc.h {
				t.Errorf("ShapeSize() = %dx%d, expected %dx%d", w, h, tc.w, tc.h)
			}
		})
	}

	if w, h := ShapeSize(nil); w != 0 || h != 0 {
		t.Errorf("ShapeSize(nil) = %dx%d", w, h)
	}
}

func TestFramedBoard(t *testing.T) {
	got := Board(hex.NewBoard(1), Options{Plain: true, Frame: true})
	want := strings.Join([]string{
		"┌───┐",
		"│ . │",
		"└───┘",
	}, "\n")
	if got != want {
		t.Errorf("Board() =\n%s\nexpected\n%s", got, want)
	}
}

func TestShape(t *testing.T) {
	got := Shape(mustMask(t, 28, 0), Options{Plain: true})
	if want := "#\n #\n  #"; got != want {
		t.Errorf("Shape() =\n%s\nexpected\n%s", got, want)
	}
}

func TestDrawUsesCellColors(t *testing.T) {
	b := hex.NewBoard(2)
	if err := b.Place(hex.At(1, 1), mustMask(t, 8, 3)); err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(BoardSize(2))
	DrawBoard(s, 0, 0, b, Unicode)
	if c := s.GetCell(2, 1); c.Rune != '⬢' || c.Color != core.CellColor(3) {
		t.Errorf("center cell = %+v", c)
	}
	if c := s.GetCell(0, 1); c.Rune != '⬡' || c.Color != core.ColorDim {
		t.Errorf("empty cell = %+v", c)
	}
}

func TestStyled(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.Set(2, 0, 'c', core.ColorBlue)

	out := Styled(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Styled() should have 2 rows, got %q", out)
	}
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("Styled() lost %q: %q", r, out)
		}
	}
}

func TestTable(t *testing.T) {
	headers := []string{"Algorithm", "Best"}
	rows := [][]string{{"nrsearch", "120"}, {"first", "85"}}

	for _, plain := range []bool{true, false} {
		out := Table(headers, rows, plain)
		for _, want := range []string{"Algorithm", "nrsearch", "120", "first", "85"} {
			if !strings.Contains(out, want) {
				t.Errorf("Table(plain=%v) missing %q:\n%s", plain, want, out)
			}
		}
	}
	if out := Table(headers, rows, true); !strings.Contains(out, "+") {
		t.Errorf("plain table should use an ASCII border:\n%s", out)
	}
}
