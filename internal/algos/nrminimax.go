package algos

import (
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

func init() {
	registry.Register("nrminimax", func() registry.Algorithm { return NewNRMinimax(core.DefaultWeights()) })
}

// NRMinimax scores every move by density, cleared cells and the entropy
// swing it causes, measured on a trial copy of the board.
type NRMinimax struct {
	w core.Weights
}

// NewNRMinimax creates the algorithm with the given weights.
func NewNRMinimax(w core.Weights) *NRMinimax {
	return &NRMinimax{w: w}
}

func (n *NRMinimax) ID() string    { return "nrminimax" }
func (n *NRMinimax) Title() string { return "Entropy Minimax" }

// Reset picks up the configured weights. A config without weights keeps
// the current ones.
func (n *NRMinimax) Reset(cfg core.RuntimeConfig) {
	if cfg.Weights != (core.Weights{}) {
		n.w = cfg.Weights
	}
}

func (n *NRMinimax) Choose(b *hex.Board, queue []*hex.Shape) (int, hex.Coord, error) {
	cands, err := candidates(b, queue)
	if err != nil {
		return 0, hex.Coord{}, err
	}
	baseline := b.Entropy()

	c := best(cands, func(c candidate) float64 {
		return n.score(b, baseline, c.origin, c.piece)
	})
	return c.index, c.origin, nil
}

// score is
//
//	density*D + elimination*cleared/radius + entropy*Logistic(after-baseline-offset, steepness)
//
// where after is the entropy of the board once the move and its clears are
// applied.
func (n *NRMinimax) score(b *hex.Board, baseline float64, origin hex.Coord, piece *hex.Shape) float64 {
	score := n.w.Density * b.DensityIndex(origin, piece)
	trial, removed, err := b.Trial(origin, piece)
	if err != nil {
		return score
	}
	score += n.w.Elimination * float64(len(removed)) / float64(b.Radius())
	delta := trial.Entropy() - baseline - n.w.EntropyOffset
	score += n.w.Entropy * hex.Logistic(delta, n.w.Steepness)
	return score
}
