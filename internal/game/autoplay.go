package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexblocks/internal/algos"
	"github.com/vovakirdan/hexblocks/internal/codec"
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

// RunnerConfig holds the optional parts of an autoplay runner.
type RunnerConfig struct {
	// MaxTurns stops the game early. 0 plays until no piece fits.
	MaxTurns int

	// Logger receives per-move debug lines and one info line per game.
	// Nil discards everything.
	Logger *log.Logger

	// Store persists finished runs. Nil disables persistence.
	Store *storage.Store
}

// Runner plays whole games with one algorithm.
type Runner struct {
	alg      registry.Algorithm
	maxTurns int
	logger   *log.Logger
	store    *storage.Store
}

// Result summarizes one autoplayed game.
type Result struct {
	RunID      string
	Algorithm  string
	Seed       int64
	Score      int
	Turns      int
	Cleared    int
	GameOver   bool // False when MaxTurns cut the game short
	Duration   time.Duration
	FinalBoard string
}

// NewRunner creates a runner for alg.
func NewRunner(alg registry.Algorithm, cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		alg:      alg,
		maxTurns: max(cfg.MaxTurns, 0),
		logger:   logger,
		store:    cfg.Store,
	}
}

// Run plays one game with cfg. A cancelled context stops the game between
// moves and returns the partial result with the context error; partial
// games are not saved.
func (r *Runner) Run(ctx context.Context, cfg core.RuntimeConfig) (Result, error) {
	r.alg.Reset(cfg)
	g := New(cfg)
	start := time.Now()

	for !g.State().GameOver {
		if r.maxTurns > 0 && g.State().Turn >= r.maxTurns {
			break
		}
		if err := ctx.Err(); err != nil {
			return r.result(g, start), err
		}

		res, err := g.Step(r.alg)
		if err != nil {
			if algos.IsNoMove(err) {
				break
			}
			return r.result(g, start), fmt.Errorf("game: turn %d: %w", g.State().Turn+1, err)
		}
		r.logger.Debug("move",
			"turn", res.State.Turn,
			"piece", res.Index,
			"origin", res.Origin,
			"cleared", res.Cleared,
			"score", res.State.Score,
		)
	}

	result := r.result(g, start)
	r.logger.Info("game finished",
		"algorithm", result.Algorithm,
		"seed", result.Seed,
		"score", result.Score,
		"turns", result.Turns,
		"cleared", result.Cleared,
		"duration", result.Duration.Round(time.Millisecond),
	)

	if r.store != nil {
		run := &storage.Run{
			RunID:      result.RunID,
			Algorithm:  result.Algorithm,
			Radius:     cfg.Radius,
			QueueSize:  cfg.QueueSize,
			Easy:       cfg.Easy,
			Seed:       result.Seed,
			Score:      result.Score,
			Turns:      result.Turns,
			Cleared:    result.Cleared,
			DurationMs: result.Duration.Milliseconds(),
			FinalBoard: result.FinalBoard,
		}
		if _, err := r.store.SaveRun(run); err != nil {
			r.logger.Warn("could not save run", "error", err)
		} else {
			result.RunID = run.RunID
		}
	}

	return result, nil
}

func (r *Runner) result(g *Game, start time.Time) Result {
	st := g.State()
	return Result{
		Algorithm:  r.alg.ID(),
		Seed:       g.Config().Seed,
		Score:      st.Score,
		Turns:      st.Turn,
		Cleared:    g.Cleared(),
		GameOver:   st.GameOver,
		Duration:   time.Since(start),
		FinalBoard: codec.FormatBoard(g.Board()),
	}
}
