package algos

import (
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

func init() {
	registry.Register("nrsearch", func() registry.Algorithm { return NRSearch{} })
}

// NRSearch prefers large pieces, snug placements and clears.
type NRSearch struct{}

func (NRSearch) ID() string                   { return "nrsearch" }
func (NRSearch) Title() string                { return "Density Search" }
func (NRSearch) Reset(cfg core.RuntimeConfig) {}

func (NRSearch) Choose(b *hex.Board, queue []*hex.Shape) (int, hex.Coord, error) {
	cands, err := candidates(b, queue)
	if err != nil {
		return 0, hex.Coord{}, err
	}
	radius := float64(b.Radius())

	c := best(cands, func(c candidate) float64 {
		score := b.DensityIndex(c.origin, c.piece) + float64(c.piece.Count())
		if _, removed, err := b.Trial(c.origin, c.piece); err == nil {
			score += float64(len(removed)) / radius
		}
		return score
	})
	return c.index, c.origin, nil
}
