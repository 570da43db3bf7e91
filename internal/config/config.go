// Package config provides YAML-based configuration loading and difficulty
// presets for hexblocks.
package config

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/hexblocks/internal/core"
)

//go:embed defaults/hexblocks.yaml
var defaultYAML []byte

// Config is the full hexblocks configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Queue     QueueConfig     `yaml:"queue"`
	Algorithm AlgorithmConfig `yaml:"algorithm"`
	Weights   WeightsConfig   `yaml:"weights"`
	Autoplay  AutoplayConfig  `yaml:"autoplay"`
	Storage   StorageConfig   `yaml:"storage"`
}

// BoardConfig defines the board size.
type BoardConfig struct {
	Radius int `yaml:"radius"`
}

// QueueConfig defines the piece queue.
type QueueConfig struct {
	Size   int  `yaml:"size"`
	Mode   Mode `yaml:"mode"`   // "easy" or "normal" piece distribution
	Colors int  `yaml:"colors"` // Palette size pieces are painted from
}

// AlgorithmConfig selects the algorithm used when none is given.
type AlgorithmConfig struct {
	Default string `yaml:"default"`
}

// WeightsConfig tunes the nrminimax heuristic.
type WeightsConfig struct {
	Density       float64 `yaml:"density"`
	Elimination   float64 `yaml:"elimination"`
	Entropy       float64 `yaml:"entropy"`
	EntropyOffset float64 `yaml:"entropy_offset"`
	Steepness     float64 `yaml:"steepness"`
}

// AutoplayConfig defines batch play.
type AutoplayConfig struct {
	Games    int `yaml:"games"`
	MaxTurns int `yaml:"max_turns"` // 0 means play until no piece fits
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Mode is the piece distribution.
type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeNormal Mode = "normal"
)

// DefaultConfig returns the hardcoded configuration, used when no file
// and no embedded default can be read.
func DefaultConfig() Config {
	w := core.DefaultWeights()
	return Config{
		Board: BoardConfig{
			Radius: 5,
		},
		Queue: QueueConfig{
			Size:   3,
			Mode:   ModeNormal,
			Colors: len(core.DefaultPalette),
		},
		Algorithm: AlgorithmConfig{
			Default: "nrsearch",
		},
		Weights: WeightsConfig{
			Density:       w.Density,
			Elimination:   w.Elimination,
			Entropy:       w.Entropy,
			EntropyOffset: w.EntropyOffset,
			Steepness:     w.Steepness,
		},
		Autoplay: AutoplayConfig{
			Games:    1,
			MaxTurns: 0,
		},
		Storage: StorageConfig{
			Path: "~/.hexblocks/runs.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Board.Radius < 1 {
		return fmt.Errorf("config: board.radius must be at least 1, got %d", c.Board.Radius)
	}
	if c.Queue.Size < 1 {
		return fmt.Errorf("config: queue.size must be at least 1, got %d", c.Queue.Size)
	}
	if c.Queue.Mode != ModeEasy && c.Queue.Mode != ModeNormal {
		return fmt.Errorf("config: queue.mode must be %q or %q, got %q", ModeEasy, ModeNormal, c.Queue.Mode)
	}
	if c.Queue.Colors < 1 {
		return fmt.Errorf("config: queue.colors must be at least 1, got %d", c.Queue.Colors)
	}
	if c.Algorithm.Default == "" {
		return fmt.Errorf("config: algorithm.default is empty")
	}
	if c.Weights.Steepness <= 0 {
		return fmt.Errorf("config: weights.steepness must be positive, got %v", c.Weights.Steepness)
	}
	if c.Autoplay.Games < 1 {
		return fmt.Errorf("config: autoplay.games must be at least 1, got %d", c.Autoplay.Games)
	}
	if c.Autoplay.MaxTurns < 0 {
		return fmt.Errorf("config: autoplay.max_turns must not be negative, got %d", c.Autoplay.MaxTurns)
	}
	return nil
}

// Runtime converts the configuration into the runtime form passed to games
// and algorithms.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Radius:    c.Board.Radius,
		QueueSize: c.Queue.Size,
		Easy:      c.Queue.Mode == ModeEasy,
		Colors:    c.Queue.Colors,
		Seed:      seed,
		Weights: core.Weights{
			Density:       c.Weights.Density,
			Elimination:   c.Weights.Elimination,
			Entropy:       c.Weights.Entropy,
			EntropyOffset: c.Weights.EntropyOffset,
			Steepness:     c.Weights.Steepness,
		},
	}
}
