package algos

import (
	"math/rand"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

func init() {
	registry.Register("random", func() registry.Algorithm { return NewRandom(1) })
}

// Random picks uniformly among all legal moves of the distinct pieces.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random algorithm with the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ID() string    { return "random" }
func (r *Random) Title() string { return "Random" }

// Reset reseeds the generator.
func (r *Random) Reset(cfg core.RuntimeConfig) {
	r.rng = rand.New(rand.NewSource(cfg.Seed))
}

func (r *Random) Choose(b *hex.Board, queue []*hex.Shape) (int, hex.Coord, error) {
	cands, err := candidates(b, queue)
	if err != nil {
		return 0, hex.Coord{}, err
	}
	c := cands[r.rng.Intn(len(cands))]
	return c.index, c.origin, nil
}
