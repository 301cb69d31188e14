// Package engine drives the game: a frame-capped loop that dispatches
// input, updates the UI and game state, applies screen switches, and
// presents each frame.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/registry"
)

// ErrShutdown is returned by Step after the quit sequence has run.
var ErrShutdown = errors.New("engine: shutdown")

// Display shows finished frames.
type Display interface {
	Present(s *core.Surface)
	Teardown()
}

// EventSource hands over pending input without blocking.
type EventSource interface {
	Poll() []core.Event
}

// UIManager is the widget layer as the loop sees it.
type UIManager interface {
	ProcessEvent(ev core.Event) bool
	Update(dt time.Duration)
	Draw(s *core.Surface)
	SetVisualDebugMode(on bool)
	VisualDebugActive() bool
}

// Presence receives activity changes and is closed on quit.
type Presence interface {
	Update(a presence.Activity)
	Close()
	Running() bool
	Join(timeout time.Duration) bool
}

// Prompt asks about unsaved changes when a quit arrives mid-game.
type Prompt interface {
	Open(s *game.State)
}

// Options wires a Loop.
type Options struct {
	State    *game.State
	Screens  *registry.Registry
	UI       UIManager
	Display  Display
	Events   EventSource
	Presence Presence
	Prompt   Prompt
	Surface  *core.Surface
	Clock    *Clock
	Shutdown *Shutdown
	Logger   *log.Logger
}

// Loop owns the game state for its lifetime; nothing else may touch it
// while Run is executing.
type Loop struct {
	state    *game.State
	screens  *registry.Registry
	ui       UIManager
	display  Display
	events   EventSource
	presence Presence
	prompt   Prompt
	surface  *core.Surface
	clock    *Clock
	shutdown *Shutdown
	logger   *log.Logger

	pendingSize  *tea.WindowSizeMsg
	lastActivity presence.Activity
}

var debugKey = key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "debug"))

// New creates a loop. Clock and Shutdown get defaults when nil.
func New(opts Options) *Loop {
	l := &Loop{
		state:    opts.State,
		screens:  opts.Screens,
		ui:       opts.UI,
		display:  opts.Display,
		events:   opts.Events,
		presence: opts.Presence,
		prompt:   opts.Prompt,
		surface:  opts.Surface,
		clock:    opts.Clock,
		shutdown: opts.Shutdown,
		logger:   opts.Logger,
	}
	if l.clock == nil {
		l.clock = NewClock(core.DefaultTickRate)
	}
	if l.logger == nil {
		l.logger = log.Default()
	}
	if l.shutdown == nil {
		l.shutdown = &Shutdown{Presence: l.presence, Display: l.display, Logger: l.logger}
	}
	return l
}

// Run steps the loop until quit, an error, or ctx is done.
// A quit returns nil.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dt := l.clock.Tick()
		if err := l.Step(dt); err != nil {
			if errors.Is(err, ErrShutdown) {
				return nil
			}
			return err
		}
	}
}

// Step runs one iteration.
func (l *Loop) Step(dt time.Duration) error {
	l.applyResize()
	pressed := false

	if l.state.CurrentScreen != game.StartScreen {
		l.surface.Fill(background(l.state))
	}
	l.screens.Get(l.state.CurrentScreen).OnUse(l.state)

	for _, ev := range l.events.Poll() {
		l.screens.Get(l.state.CurrentScreen).HandleEvent(l.state, ev)

		switch msg := ev.(type) {
		case core.QuitEvent:
			if l.state.QuitAllowed() {
				l.logger.Debug("quit", "screen", l.state.CurrentScreen)
				l.shutdown.Run()
				return ErrShutdown
			}
			l.prompt.Open(l.state)
		case tea.MouseMsg:
			if msg.Action == tea.MouseActionPress {
				l.state.Clicked = true
				pressed = true
			}
		case tea.KeyMsg:
			if key.Matches(msg, debugKey) {
				l.ui.SetVisualDebugMode(!l.ui.VisualDebugActive())
			}
		case tea.WindowSizeMsg:
			l.pendingSize = &msg
		}

		l.ui.ProcessEvent(ev)
	}

	l.ui.Update(dt)
	l.state.Update(dt)

	if l.state.QuitRequested() {
		l.logger.Debug("quit requested", "screen", l.state.CurrentScreen)
		l.shutdown.Run()
		return ErrShutdown
	}

	switched := ApplyTransition(l.state, l.screens)
	if switched {
		l.logger.Debug("screen switched", "from", l.state.LastScreen, "to", l.state.CurrentScreen)
	}
	// A press stays visible to the next OnUse of the same screen.
	if switched || !pressed {
		l.state.Clicked = false
	}
	if a := l.state.Activity(); a != l.lastActivity {
		l.presence.Update(a)
		l.lastActivity = a
	}

	l.ui.Draw(l.surface)
	l.display.Present(l.surface)
	return nil
}

// applyResize resizes the surface at a frame boundary so a frame is never
// drawn at two sizes, then lets the active screen lay out its widgets again.
func (l *Loop) applyResize() {
	if l.pendingSize == nil {
		return
	}
	l.surface.Resize(l.pendingSize.Width, l.pendingSize.Height)
	l.pendingSize = nil
	if r, ok := l.screens.Get(l.state.CurrentScreen).(registry.Relayouter); ok {
		r.Relayout(l.state)
	}
}

func background(s *game.State) core.Color {
	if s.Settings.DarkMode {
		return core.ColorBgDark
	}
	return core.ColorBgLight
}
