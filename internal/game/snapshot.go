package game

import (
	"fmt"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
)

// Snapshot contains the complete game state for replay and save.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Turn     int
	Score    int
	Cleared  int
	Radius   int
	GameOver bool

	// Board occupancy and colors in board order
	Board  []bool
	Colors []int

	// Queue pieces as masks, and their colors
	Queue       []byte
	QueueColors []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cells := g.board.Cells()
	colors := make([]int, len(cells))
	for i, c := range cells {
		colors[i] = c.Color()
	}

	pieces := g.queue.Pieces()
	queueColors := make([]int, len(pieces))
	for i, p := range pieces {
		queueColors[i] = p.Color()
	}

	return Snapshot{
		Turn:        g.turn,
		Score:       g.score,
		Cleared:     g.cleared,
		Radius:      g.board.Radius(),
		GameOver:    g.gameOver,
		Board:       g.board.Booleans(),
		Colors:      colors,
		Queue:       g.queue.Masks(),
		QueueColors: queueColors,
	}
}

// Restore loads a snapshot. Pieces generated after the restore come from
// cfg's seed; the queue size follows the snapshot.
func (g *Game) Restore(cfg core.RuntimeConfig, s Snapshot) error {
	board, err := hex.BoardFromBooleans(s.Board)
	if err != nil {
		return fmt.Errorf("game: restore board: %w", err)
	}
	if board.Radius() != s.Radius {
		return fmt.Errorf("game: restore board: radius %d does not match %d cells", s.Radius, len(s.Board))
	}
	if len(s.Colors) == board.Len() {
		for i, c := range s.Colors {
			board.SetColorAt(i, c)
		}
	}

	cfg.Radius = s.Radius
	cfg.QueueSize = len(s.Queue)
	queue := NewQueue(cfg.QueueSize, NewGenerator(cfg.Seed, cfg.Easy, cfg.Colors))
	for i, mask := range s.Queue {
		color := 0
		if i < len(s.QueueColors) {
			color = s.QueueColors[i]
		}
		piece, err := hex.ShapeFromMask(mask, color)
		if err != nil {
			return fmt.Errorf("game: restore queue slot %d: %w", i, err)
		}
		queue.Inject(piece, i)
	}

	g.cfg = cfg
	g.board = board
	g.queue = queue
	g.turn = s.Turn
	g.score = s.Score
	g.cleared = s.Cleared
	g.gameOver = !g.hasMove()
	return nil
}
