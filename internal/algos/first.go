package algos

import (
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

func init() {
	registry.Register("first", func() registry.Algorithm { return First{} })
}

// First plays the first queued piece that fits, at its first legal origin.
type First struct{}

func (First) ID() string                   { return "first" }
func (First) Title() string                { return "First Fit" }
func (First) Reset(cfg core.RuntimeConfig) {}

func (First) Choose(b *hex.Board, queue []*hex.Shape) (int, hex.Coord, error) {
	if len(queue) == 0 {
		return 0, hex.Coord{}, ErrEmptyQueue
	}
	for index, piece := range queue {
		if piece == nil {
			continue
		}
		if origins := b.LegalOrigins(piece); len(origins) > 0 {
			return index, origins[0], nil
		}
	}
	return 0, hex.Coord{}, ErrNoOptions
}
