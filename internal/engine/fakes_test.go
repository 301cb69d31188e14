package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/registry"
)

// callLog records calls from every fake in order.
type callLog struct {
	calls []string
}

func (c *callLog) add(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *callLog) reset() { c.calls = nil }

type fakeScreen struct {
	id  game.ScreenID
	log *callLog

	onUse      func(s *game.State)
	onEvent    func(s *game.State, ev core.Event)
	onActivate func(s *game.State)
}

func (f *fakeScreen) OnUse(s *game.State) {
	f.log.add("use:%s", f.id)
	if f.onUse != nil {
		f.onUse(s)
	}
}

func (f *fakeScreen) HandleEvent(s *game.State, ev core.Event) {
	f.log.add("event:%s", f.id)
	if f.onEvent != nil {
		f.onEvent(s, ev)
	}
}

func (f *fakeScreen) ScreenSwitches(s *game.State) {
	f.log.add("activate:%s", f.id)
	if f.onActivate != nil {
		f.onActivate(s)
	}
}

func (f *fakeScreen) ExitScreen(*game.State) { f.log.add("exit:%s", f.id) }

func (f *fakeScreen) Relayout(*game.State) { f.log.add("relayout:%s", f.id) }

type fakeUI struct {
	log   *callLog
	debug bool
}

func (f *fakeUI) ProcessEvent(core.Event) bool { f.log.add("ui.process"); return false }
func (f *fakeUI) Update(time.Duration)        { f.log.add("ui.update") }
func (f *fakeUI) Draw(*core.Surface)          { f.log.add("ui.draw") }
func (f *fakeUI) SetVisualDebugMode(on bool)  { f.debug = on }
func (f *fakeUI) VisualDebugActive() bool     { return f.debug }

type fakeDisplay struct {
	log    *callLog
	frames int
	last   *core.Surface
}

func (f *fakeDisplay) Present(s *core.Surface) {
	f.log.add("present")
	f.frames++
	f.last = s
}

func (f *fakeDisplay) Teardown() { f.log.add("teardown") }

type fakeEvents struct {
	queue [][]core.Event
}

func (f *fakeEvents) push(evs ...core.Event) { f.queue = append(f.queue, evs) }

func (f *fakeEvents) Poll() []core.Event {
	if len(f.queue) == 0 {
		return nil
	}
	evs := f.queue[0]
	f.queue = f.queue[1:]
	return evs
}

type fakePresence struct {
	log      *callLog
	running  bool
	updates  []presence.Activity
	joinedOK bool
}

func (f *fakePresence) Update(a presence.Activity) { f.updates = append(f.updates, a) }
func (f *fakePresence) Close()                     { f.log.add("presence.close") }
func (f *fakePresence) Running() bool              { return f.running }
func (f *fakePresence) Join(timeout time.Duration) bool {
	f.log.add("presence.join:%s", timeout)
	f.running = false
	return f.joinedOK
}

type fakePrompt struct {
	log *callLog
}

func (f *fakePrompt) Open(s *game.State) { f.log.add("prompt:%s", s.CurrentScreen) }

type harness struct {
	log      *callLog
	state    *game.State
	screens  map[game.ScreenID]*fakeScreen
	ui       *fakeUI
	display  *fakeDisplay
	events   *fakeEvents
	presence *fakePresence
	surface  *core.Surface
	exits    []int
	loop     *Loop
}

func newHarness() *harness {
	cl := &callLog{}
	h := &harness{
		log:      cl,
		state:    game.NewState(game.Options{Seed: 1, Logger: log.New(io.Discard)}),
		screens:  make(map[game.ScreenID]*fakeScreen),
		ui:       &fakeUI{log: cl},
		display:  &fakeDisplay{log: cl},
		events:   &fakeEvents{},
		presence: &fakePresence{log: cl, running: true, joinedOK: true},
		surface:  core.NewSurface(20, 5),
	}

	var entries []registry.Entry
	for id := game.ScreenID(0); id < game.ScreenCount; id++ {
		fs := &fakeScreen{id: id, log: cl}
		h.screens[id] = fs
		entries = append(entries, registry.Entry{ID: id, Screen: fs})
	}

	logger := log.New(io.Discard)
	h.loop = New(Options{
		State:    h.state,
		Screens:  registry.New(entries...),
		UI:       h.ui,
		Display:  h.display,
		Events:   h.events,
		Presence: h.presence,
		Prompt:   &fakePrompt{log: cl},
		Surface:  h.surface,
		Clock:    NewClock(1000),
		Shutdown: &Shutdown{
			Presence:    h.presence,
			Display:     h.display,
			JoinTimeout: time.Second,
			Exit:        func(code int) { h.exits = append(h.exits, code) },
			Logger:      logger,
		},
		Logger: logger,
	})
	return h
}
