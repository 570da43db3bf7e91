package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexblocks/internal/hex"
)

// Source supplies new pieces to a queue.
type Source interface {
	Next() *hex.Shape
}

// Queue is the fixed-size row of pieces offered to the player.
// Index -1 addresses the last slot wherever an index is taken.
type Queue struct {
	pieces []*hex.Shape
	src    Source
}

// NewQueue creates a queue of at least one piece, filled from src.
func NewQueue(size int, src Source) *Queue {
	q := &Queue{
		pieces: make([]*hex.Shape, max(size, 1)),
		src:    src,
	}
	q.Reset()
	return q
}

// Reset replaces every piece with a new one.
func (q *Queue) Reset() {
	for i := range q.pieces {
		q.pieces[i] = q.src.Next()
	}
}

// Len returns the queue size.
func (q *Queue) Len() int { return len(q.pieces) }

// Pieces returns the queued pieces in order. The slice is a copy; the
// shapes are shared and must not be modified.
func (q *Queue) Pieces() []*hex.Shape {
	out := make([]*hex.Shape, len(q.pieces))
	copy(out, q.pieces)
	return out
}

func (q *Queue) resolve(index int) (int, error) {
	if index == -1 {
		index = len(q.pieces) - 1
	}
	if index < 0 || index >= len(q.pieces) {
		return 0, fmt.Errorf("game: queue index %d out of range for length %d", index, len(q.pieces))
	}
	return index, nil
}

// Get returns the piece at index.
func (q *Queue) Get(index int) (*hex.Shape, error) {
	i, err := q.resolve(index)
	if err != nil {
		return nil, err
	}
	return q.pieces[i], nil
}

// Fetch removes the piece at index, shifts the rest forward and appends a
// new piece at the end.
func (q *Queue) Fetch(index int) (*hex.Shape, error) {
	i, err := q.resolve(index)
	if err != nil {
		return nil, err
	}
	p := q.pieces[i]
	copy(q.pieces[i:], q.pieces[i+1:])
	q.pieces[len(q.pieces)-1] = q.src.Next()
	return p, nil
}

// Next fetches the first piece.
func (q *Queue) Next() *hex.Shape {
	p, _ := q.Fetch(0)
	return p
}

// Inject replaces the piece at index. Returns false for a nil piece or a
// bad index.
func (q *Queue) Inject(piece *hex.Shape, index int) bool {
	if piece == nil {
		return false
	}
	i, err := q.resolve(index)
	if err != nil {
		return false
	}
	q.pieces[i] = piece
	return true
}

// Masks returns the one-byte encoding of every queued piece.
func (q *Queue) Masks() []byte {
	out := make([]byte, len(q.pieces))
	for i, p := range q.pieces {
		out[i] = p.Mask()
	}
	return out
}

func (q *Queue) String() string {
	parts := make([]string, len(q.pieces))
	for i, p := range q.pieces {
		parts[i] = p.String()
	}
	return "Queue[" + strings.Join(parts, ", ") + "]"
}
