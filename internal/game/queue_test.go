package game

import (
	"slices"
	"testing"

	"github.com/vovakirdan/hexblocks/internal/hex"
)

// sequence hands out catalog masks in order, cycling.
type sequence struct {
	masks []byte
	next  int
}

func (s *sequence) Next() *hex.Shape {
	m := s.masks[s.next%len(s.masks)]
	s.next++
	shape, err := hex.ShapeFromMask(m, 0)
	if err != nil {
		panic(err)
	}
	return shape
}

func TestQueueFetch(t *testing.T) {
	q := NewQueue(3, &sequence{masks: []byte{8, 28, 127, 13, 42}})
	if got := q.Masks(); !slices.Equal(got, []byte{8, 28, 127}) {
		t.Fatalf("initial queue = %v", got)
	}

	p, err := q.Fetch(0)
	if err != nil || p.Mask() != 8 {
		t.Fatalf("Fetch(0) = %v, %v", p, err)
	}
	if got := q.Masks(); !slices.Equal(got, []byte{28, 127, 13}) {
		t.Errorf("after Fetch(0) = %v", got)
	}

	p, err = q.Fetch(-1)
	if err != nil || p.Mask() != 13 {
		t.Fatalf("Fetch(-1) = %v, %v", p, err)
	}
	if got := q.Masks(); !slices.Equal(got, []byte{28, 127, 42}) {
		t.Errorf("after Fetch(-1) = %v", got)
	}

	if p := q.Next(); p.Mask() != 28 {
		t.Errorf("Next() = %d", p.Mask())
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d", q.Len())
	}
}

func TestQueueIndexErrors(t *testing.T) {
	q := NewQueue(2, &sequence{masks: []byte{8}})
	for _, i := range []int{2, -2, 10} {
		if _, err := q.Get(i); err == nil {
			t.Errorf("Get(%d) should fail", i)
		}
		if _, err := q.Fetch(i); err == nil {
			t.Errorf("Fetch(%d) should fail", i)
		}
	}
	if got := q.Masks(); !slices.Equal(got, []byte{8, 8}) {
		t.Errorf("failed fetches changed the queue: %v", got)
	}
}

func TestQueueInject(t *testing.T) {
	q := NewQueue(3, &sequence{masks: []byte{8}})
	line := Catalog[pieceLine3I].Shape(1)

	if !q.Inject(line, -1) {
		t.Fatal("Inject(-1) failed")
	}
	if got := q.Masks(); !slices.Equal(got, []byte{8, 8, 28}) {
		t.Errorf("after Inject(-1) = %v", got)
	}
	if q.Inject(nil, 0) {
		t.Error("Inject(nil) should fail")
	}
	if q.Inject(line, 3) {
		t.Error("Inject out of range should fail")
	}
}

func TestQueueMinimumSize(t *testing.T) {
	q := NewQueue(0, &sequence{masks: []byte{8}})
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", q.Len())
	}

	pieces := q.Pieces()
	pieces[0] = nil
	if p, _ := q.Get(0); p == nil {
		t.Error("Pieces() must return a copy")
	}
}
