// Package registry maps variant IDs to game constructors.
//
// Variants add themselves from init(), so the platform and the CLI can
// list and build games by ID without importing each variant package.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Game is a deterministic simulation driven one fixed tick at a time.
// Implementations hold no terminal or timer state; the platform owns
// input mapping, pacing and drawing to the real screen.
type Game interface {
	// ID is the stable variant key used by the CLI and stored with runs.
	ID() string
	Title() string

	// Reset starts a fresh round. The same RuntimeConfig always yields
	// the same round, which is what makes replays possible.
	Reset(cfg core.RuntimeConfig)

	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register panics on a duplicate ID.
func Register(id string, f Factory) {
	// Built outside the lock so a factory may consult the registry.
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns all variants ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
