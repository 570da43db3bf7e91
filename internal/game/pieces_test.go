package game

import (
	"strings"
	"testing"
)

func expectedCount(name string) int {
	switch {
	case name == "uno":
		return 1
	case name == "bigBlock":
		return 7
	case strings.ContainsRune(name, '3'):
		return 3
	default:
		return 4
	}
}

func TestCatalog(t *testing.T) {
	if len(Catalog) != 36 {
		t.Fatalf("catalog has %d pieces, expected 36", len(Catalog))
	}

	names := make(map[string]bool)
	masks := make(map[byte]bool)
	for _, p := range Catalog {
		if names[p.Name] {
			t.Errorf("duplicate name %q", p.Name)
		}
		if masks[p.Mask] {
			t.Errorf("duplicate mask %d (%s)", p.Mask, p.Name)
		}
		names[p.Name] = true
		masks[p.Mask] = true

		s := p.Shape(2)
		if s.Count() != expectedCount(p.Name) {
			t.Errorf("%s has %d cells, expected %d", p.Name, s.Count(), expectedCount(p.Name))
		}
		if s.Mask() != p.Mask || s.Color() != 2 {
			t.Errorf("%s decoded to mask %d color %d", p.Name, s.Mask(), s.Color())
		}
	}
}

func TestPieceLookup(t *testing.T) {
	if p := PieceByIndex(3); p.Name != "line3I" {
		t.Errorf("PieceByIndex(3) = %s", p.Name)
	}
	for _, i := range []int{-1, 36, 99} {
		if p := PieceByIndex(i); p.Name != "bigBlock" {
			t.Errorf("PieceByIndex(%d) = %s, expected bigBlock", i, p.Name)
		}
	}

	if p, ok := PieceByName("fan4B"); !ok || p.Mask != 57 {
		t.Errorf("PieceByName(fan4B) = %+v, %v", p, ok)
	}
	if _, ok := PieceByName("pentomino"); ok {
		t.Error("unknown name should not be found")
	}

	if p, ok := PieceByMask(28 | 0x80); !ok || p.Name != "line3I" {
		t.Errorf("PieceByMask ignores the top bit: got %+v, %v", p, ok)
	}
	if _, ok := PieceByMask(3); ok {
		t.Error("mask 3 is not in the catalog")
	}
}

func TestLeftRightCorner4(t *testing.T) {
	expected := []string{"corner4Il", "corner4Ir", "corner4Jl", "corner4Jr", "corner4Kl", "corner4Kr"}
	for n, name := range expected {
		if got := Catalog[leftRightCorner4(n)].Name; got != name {
			t.Errorf("leftRightCorner4(%d) = %s, expected %s", n, got, name)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(5, false, 7)
	b := NewGenerator(5, false, 7)
	for i := range 50 {
		pa, pb := a.Next(), b.Next()
		if pa.Mask() != pb.Mask() || pa.Color() != pb.Color() {
			t.Fatalf("draw %d differs: %d/%d vs %d/%d", i, pa.Mask(), pa.Color(), pb.Mask(), pb.Color())
		}
	}
}

func TestGeneratorModes(t *testing.T) {
	tests := []struct {
		name     string
		easy     bool
		wantBig  bool
		colors   int
		maxColor int
	}{
		{"easy", true, false, 3, 3},
		{"normal", false, true, 7, 7},
		{"no colors", false, true, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(11, tc.easy, tc.colors)
			sawBig := false
			for range 2000 {
				s := g.Next()
				if _, ok := PieceByMask(s.Mask()); !ok {
					t.Fatalf("generated mask %d is not in the catalog", s.Mask())
				}
				if s.Color() < 0 || s.Color() >= tc.maxColor {
					t.Fatalf("color %d out of range", s.Color())
				}
				if s.Mask() == Catalog[pieceBigBlock].Mask {
					sawBig = true
				}
			}
			if sawBig != tc.wantBig {
				t.Errorf("big block drawn = %v, expected %v", sawBig, tc.wantBig)
			}
		})
	}
}
