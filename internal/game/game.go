package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexblocks/internal/algos"
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

// Points per cleared cell. Placing a piece earns one point per cell.
const clearBonus = 5

// Points returns the score for placing a piece of placed cells that
// clears cleared cells.
func Points(placed, cleared int) int {
	return placed + clearBonus*cleared
}

// ErrGameOver is returned when a move is requested after the game ended.
var ErrGameOver = errors.New("game: game is over")

// Game is the authoritative board, queue and score.
type Game struct {
	cfg   core.RuntimeConfig
	board *hex.Board
	queue *Queue

	score    int
	turn     int
	cleared  int
	gameOver bool
}

// New creates a game and resets it with cfg.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset starts a new game: empty board, fresh queue, zero score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.board = hex.NewBoard(cfg.Radius)
	g.queue = NewQueue(cfg.QueueSize, NewGenerator(cfg.Seed, cfg.Easy, cfg.Colors))
	g.score = 0
	g.turn = 0
	g.cleared = 0
	g.gameOver = !g.hasMove()
}

// Board returns the live board. Callers must not modify it; use Apply.
func (g *Game) Board() *hex.Board { return g.board }

// Queue returns the queued pieces in order.
func (g *Game) Queue() []*hex.Shape { return g.queue.Pieces() }

// Cleared returns the total number of cells eliminated so far.
func (g *Game) Cleared() int { return g.cleared }

// Config returns the configuration of the running game.
func (g *Game) Config() core.RuntimeConfig { return g.cfg }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Turn:     g.turn,
		GameOver: g.gameOver,
	}
}

// Apply plays the queued piece at index at origin: place, eliminate, score,
// refill the queue. A rejected placement leaves the game unchanged.
func (g *Game) Apply(index int, origin hex.Coord) (core.StepResult, error) {
	if g.gameOver {
		return core.StepResult{State: g.State()}, ErrGameOver
	}
	piece, err := g.queue.Get(index)
	if err != nil {
		return core.StepResult{State: g.State()}, err
	}
	if err := g.board.Place(origin, piece); err != nil {
		return core.StepResult{State: g.State()}, fmt.Errorf("game: %w", err)
	}
	removed := g.board.Eliminate()
	if _, err := g.queue.Fetch(index); err != nil {
		return core.StepResult{State: g.State()}, err
	}

	gained := Points(piece.Count(), len(removed))
	g.score += gained
	g.turn++
	g.cleared += len(removed)
	g.gameOver = !g.hasMove()

	return core.StepResult{
		State:   g.State(),
		Index:   index,
		Origin:  origin,
		Placed:  piece.Count(),
		Cleared: len(removed),
		Gained:  gained,
	}, nil
}

// Decide asks alg for a move without playing it.
func (g *Game) Decide(alg registry.Algorithm) (algos.Decision, error) {
	if g.gameOver {
		return algos.Decision{}, ErrGameOver
	}
	d, err := algos.Evaluate(alg, g.board, g.queue.Pieces())
	if err != nil && algos.IsNoMove(err) {
		g.gameOver = true
	}
	return d, err
}

// Step asks alg for a move and applies it.
func (g *Game) Step(alg registry.Algorithm) (core.StepResult, error) {
	d, err := g.Decide(alg)
	if err != nil {
		return core.StepResult{State: g.State()}, err
	}
	return g.Apply(d.Index, d.Origin)
}

// hasMove reports whether any queued piece fits somewhere.
func (g *Game) hasMove() bool {
	for _, p := range g.queue.Pieces() {
		if len(g.board.LegalOrigins(p)) > 0 {
			return true
		}
	}
	return false
}
