// Package algos implements the placement heuristics. Each one takes a board
// and a queue of pieces and returns the queue index and origin of the move
// to play. Algorithms register themselves with the registry in init().
package algos

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

var (
	// ErrEmptyQueue is returned when the queue holds no pieces.
	ErrEmptyQueue = fmt.Errorf("%w: queue is empty", hex.ErrEmptyInput)

	// ErrNoOptions is returned when no queued piece fits anywhere.
	ErrNoOptions = fmt.Errorf("%w: no valid options found", hex.ErrEmptyInput)
)

// candidate is one legal (piece, origin) pair.
type candidate struct {
	index  int
	piece  *hex.Shape
	origin hex.Coord
}

// candidates enumerates every legal move for the distinct pieces of queue:
// queue order outside, board order inside. A piece equal to an earlier one
// is skipped, so every index refers to the first occurrence.
func candidates(b *hex.Board, queue []*hex.Shape) ([]candidate, error) {
	if len(queue) == 0 {
		return nil, ErrEmptyQueue
	}

	var out []candidate
	seen := make(map[string]bool, len(queue))
	for index, piece := range queue {
		if piece == nil {
			continue
		}
		key := piece.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, origin := range b.LegalOrigins(piece) {
			out = append(out, candidate{index: index, piece: piece, origin: origin})
		}
	}
	if len(out) == 0 {
		return nil, ErrNoOptions
	}
	return out, nil
}

// best returns the highest scoring candidate. Ties go to the earliest.
func best(cands []candidate, score func(candidate) float64) candidate {
	top := cands[0]
	topScore := score(top)
	for _, c := range cands[1:] {
		if s := score(c); s > topScore {
			top, topScore = c, s
		}
	}
	return top
}

// Decision is the move an algorithm picked.
type Decision struct {
	Algorithm string
	Index     int
	Origin    hex.Coord
	Piece     *hex.Shape
}

// Evaluate asks alg for a move. The returned decision always refers to a
// piece in queue and an origin where it can be placed.
func Evaluate(alg registry.Algorithm, b *hex.Board, queue []*hex.Shape) (Decision, error) {
	index, origin, err := alg.Choose(b, queue)
	if err != nil {
		return Decision{}, fmt.Errorf("algos: %s: %w", alg.ID(), err)
	}
	if index < 0 || index >= len(queue) || !b.CanPlace(origin, queue[index]) {
		return Decision{}, fmt.Errorf("algos: %s chose an illegal move %d at %v: %w",
			alg.ID(), index, origin, hex.ErrValidation)
	}
	return Decision{
		Algorithm: alg.ID(),
		Index:     index,
		Origin:    origin,
		Piece:     queue[index],
	}, nil
}

// IsNoMove reports whether err means there was nothing to play.
func IsNoMove(err error) bool {
	return errors.Is(err, hex.ErrEmptyInput)
}
