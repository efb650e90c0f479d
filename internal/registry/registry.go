// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no platform dependencies.
// The platform handles input mapping, timing, sound and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "memory", "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Memory Puzzle").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start, on resize and when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Variant is one selectable flavor of a game, passed back through
// core.RuntimeConfig.Variant.
type Variant struct {
	ID    string
	Label string
}

// Varianted is implemented by games that offer variants. The first entry
// is the default.
type Varianted interface {
	Variants() []Variant
}

// Helper is implemented by games that describe their controls.
type Helper interface {
	Controls() string
}

// Metered is implemented by games that expose a gauge, such as time left
// to answer. The terminal shell draws it as a progress bar under the game.
type Metered interface {
	// Meter returns a label and a fill fraction in [0, 1]. ok is false
	// when there is nothing to show.
	Meter() (label string, fraction float64, ok bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls string
	Variants []Variant
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance.
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if h, ok := g.(Helper); ok {
		info.Controls = h.Controls()
	}
	if v, ok := g.(Varianted); ok {
		info.Variants = v.Variants()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// HasVariant reports whether id offers the named variant. An empty variant
// is always accepted.
func HasVariant(id, variant string) bool {
	if variant == "" {
		return true
	}
	info, ok := Info(id)
	if !ok {
		return false
	}
	for _, v := range info.Variants {
		if v.ID == variant {
			return true
		}
	}
	return false
}
