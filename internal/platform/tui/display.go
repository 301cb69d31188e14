// Package tui is the Bubble Tea backend of the game: it shows the frames the
// loop renders, queues terminal input for the loop, and serves the game over SSH.
package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

const (
	// EventQueueSize bounds input waiting for the next frame.
	EventQueueSize = 256

	// TeardownTimeout bounds the wait for the program to restore the terminal.
	TeardownTimeout = 500 * time.Millisecond
)

// frameMsg carries a rendered frame into the program.
type frameMsg string

// Display runs a Bubble Tea program that shows whatever the frame loop last
// presented and forwards input to it. Present, Poll and Teardown are called
// from the loop goroutine; Run blocks the caller until the program exits.
// None of them wait on the program beyond TeardownTimeout.
type Display struct {
	program  *tea.Program
	renderer *lipgloss.Renderer
	palette  *palette
	frames   chan string
	events   chan core.Event
	done     chan struct{}
	dropped  atomic.Int64
	logger   *log.Logger

	teardown sync.Once
}

// NewDisplay creates a display. A nil renderer uses the default one.
func NewDisplay(renderer *lipgloss.Renderer, logger *log.Logger, opts ...tea.ProgramOption) *Display {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}
	d := &Display{
		renderer: renderer,
		palette:  newPalette(renderer),
		frames:   make(chan string, 1),
		events:   make(chan core.Event, EventQueueSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
	d.program = tea.NewProgram(model{display: d}, opts...)
	return d
}

// Run starts the program and blocks until it exits.
func (d *Display) Run() error {
	defer close(d.done)
	_, err := d.program.Run()
	if n := d.dropped.Load(); n > 0 {
		d.logger.Warn("input events dropped", "count", n)
	}
	return err
}

// Done is closed once Run returns.
func (d *Display) Done() <-chan struct{} {
	return d.done
}

// Present renders the surface and hands it to the program without waiting.
// A frame the program has not picked up yet is replaced.
func (d *Display) Present(s *core.Surface) {
	select {
	case <-d.done:
		return
	default:
	}
	frame := renderSurface(d.palette, s)
	select {
	case <-d.frames:
	default:
	}
	d.frames <- frame
}

// nextFrame waits for the next presented frame, or nil once Run has returned.
func (d *Display) nextFrame() tea.Msg {
	select {
	case f := <-d.frames:
		return frameMsg(f)
	case <-d.done:
		return nil
	}
}

// Poll returns queued input without blocking.
func (d *Display) Poll() []core.Event {
	var out []core.Event
	for range cap(d.events) {
		select {
		case ev := <-d.events:
			out = append(out, ev)
		default:
			return out
		}
	}
	return out
}

// Teardown stops the program and waits a bounded time for it to restore the
// terminal. A program that does not stop in time is killed.
func (d *Display) Teardown() {
	d.teardown.Do(func() {
		d.program.Quit()
		select {
		case <-d.done:
		case <-time.After(TeardownTimeout):
			d.logger.Warn("display did not stop in time, killing it")
			d.program.Kill()
		}
	})
}

// push queues an event, dropping it when the loop has fallen behind.
func (d *Display) push(ev core.Event) {
	select {
	case d.events <- ev:
	default:
		d.dropped.Add(1)
	}
}

// model is the Bubble Tea side of the display. It only stores the latest frame.
type model struct {
	display *Display
	frame   string
}

func (m model) Init() tea.Cmd {
	return m.display.nextFrame
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if frame, ok := msg.(frameMsg); ok {
		m.frame = string(frame)
		return m, m.display.nextFrame
	}
	if ev, ok := translate(msg); ok {
		m.display.push(ev)
	}
	return m, nil
}

func (m model) View() string {
	return m.frame
}
