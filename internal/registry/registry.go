// Package registry provides a global registry for placement algorithms.
// Algorithms register themselves in init() functions, so the CLI and the
// autoplay runner can discover them by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/hex"
)

// Algorithm picks the next move for a board and a queue of pieces.
// Implementations never modify the board they are given.
type Algorithm interface {
	// ID returns a unique identifier (e.g., "nrsearch").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset applies runtime configuration: RNG seed and weights.
	Reset(cfg core.RuntimeConfig)

	// Choose returns the queue index of the piece to play and the origin to
	// place it at.
	Choose(b *hex.Board, queue []*hex.Shape) (int, hex.Coord, error)
}

// AlgorithmInfo contains metadata about a registered algorithm.
type AlgorithmInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new algorithm instance.
type Factory func() Algorithm

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an algorithm factory to the registry.
// Typically called from an init() function.
// Panics if an algorithm with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: algorithm %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered algorithms, sorted by ID.
func List() []AlgorithmInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlgorithmInfo, 0, len(factories))
	for id := range factories {
		result = append(result, AlgorithmInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new algorithm by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Algorithm, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown algorithm %q", id)
	}

	return f(), nil
}

// Exists checks if an algorithm with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
