package core

import "github.com/vovakirdan/hexblocks/internal/hex"

// Weights tunes the nrminimax score.
type Weights struct {
	Density       float64 // Multiplier of the density index
	Elimination   float64 // Multiplier of cleared cells per radius
	Entropy       float64 // Multiplier of the logistic entropy swing
	EntropyOffset float64 // Subtracted from the entropy delta before squashing
	Steepness     float64 // Logistic steepness
}

// DefaultWeights returns the standard nrminimax weights.
func DefaultWeights() Weights {
	return Weights{
		Density:       4,
		Elimination:   5,
		Entropy:       7,
		EntropyOffset: hex.EntropyOffset,
		Steepness:     hex.EntropySteepness,
	}
}

// RuntimeConfig contains configuration passed to games and algorithms at
// initialization.
type RuntimeConfig struct {
	Radius    int     // Board radius
	QueueSize int     // Number of pieces offered per turn
	Easy      bool    // Use the easy piece distribution
	Colors    int     // Number of palette colors pieces are drawn from
	Seed      int64   // RNG seed for deterministic play
	Weights   Weights // Heuristic weights
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Radius:    5,
		QueueSize: 3,
		Easy:      false,
		Colors:    len(DefaultPalette),
		Seed:      0, // 0 means use current time in the cmd layer
		Weights:   DefaultWeights(),
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Turn     int  // Pieces placed so far
	GameOver bool // Whether no queued piece fits anymore
}

// StepResult is returned after each committed move.
type StepResult struct {
	State   GameState
	Index   int       // Queue position of the placed piece
	Origin  hex.Coord // Where it was placed
	Placed  int       // Cells the piece covered
	Cleared int       // Cells removed by elimination
	Gained  int       // Score earned by this move
}
