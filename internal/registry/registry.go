// Package registry maps every ScreenID to the screen that handles it.
// The registry is built once at startup and never changes; a missing or
// duplicate entry is a programming error and panics at construction.
package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
)

// Screen is one page of the game. Screens keep their own widgets but no
// game data; everything shared lives in *game.State.
type Screen interface {
	// OnUse runs every frame while the screen is active, before input.
	OnUse(s *game.State)

	// HandleEvent sees every input event while the screen is active.
	HandleEvent(s *game.State, ev core.Event)

	// ScreenSwitches runs when the screen becomes active.
	ScreenSwitches(s *game.State)

	// ExitScreen runs when another screen takes over.
	ExitScreen(s *game.State)
}

// Relayouter is implemented by screens whose widgets depend on the
// window size. The loop calls Relayout after a resize.
type Relayouter interface {
	Relayout(s *game.State)
}

// Entry pairs an id with its screen for New.
type Entry struct {
	ID     game.ScreenID
	Screen Screen
}

// Registry is a fixed ScreenID -> Screen table.
type Registry struct {
	screens [game.ScreenCount]Screen
}

// New builds a registry. It panics if an id is out of range, registered
// twice, or missing.
func New(entries ...Entry) *Registry {
	r := &Registry{}
	for _, e := range entries {
		if !e.ID.Valid() {
			panic(fmt.Sprintf("registry: invalid screen id %d", e.ID))
		}
		if e.Screen == nil {
			panic(fmt.Sprintf("registry: nil screen for %s", e.ID))
		}
		if r.screens[e.ID] != nil {
			panic(fmt.Sprintf("registry: screen %s already registered", e.ID))
		}
		r.screens[e.ID] = e.Screen
	}
	for id, s := range r.screens {
		if s == nil {
			panic(fmt.Sprintf("registry: no screen registered for %s", game.ScreenID(id)))
		}
	}
	return r
}

// Get returns the screen for id. Lookups of valid ids never fail.
func (r *Registry) Get(id game.ScreenID) Screen {
	return r.screens[id]
}

// List returns every id in order.
func (r *Registry) List() []game.ScreenID {
	ids := make([]game.ScreenID, 0, len(r.screens))
	for id := range r.screens {
		ids = append(ids, game.ScreenID(id))
	}
	return ids
}
