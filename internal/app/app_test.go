package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/storage"
)

type scriptedDisplay struct {
	mu        sync.Mutex
	frames    [][]core.Event
	presented int
	teardowns int
}

func (d *scriptedDisplay) Present(*core.Surface) {
	d.mu.Lock()
	d.presented++
	d.mu.Unlock()
}

func (d *scriptedDisplay) Teardown() {
	d.mu.Lock()
	d.teardowns++
	d.mu.Unlock()
}

func (d *scriptedDisplay) Poll() []core.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return nil
	}
	evs := d.frames[0]
	d.frames = d.frames[1:]
	return evs
}

type recordingClient struct {
	mu         sync.Mutex
	logins     int
	activities []presence.Activity
	logouts    int
}

func (c *recordingClient) Login() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logins++
	return nil
}

func (c *recordingClient) SetActivity(a presence.Activity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activities = append(c.activities, a)
	return nil
}

func (c *recordingClient) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logouts++
}

type brokenStore struct{}

func (brokenStore) ListClans() ([]storage.ClanSummary, error) {
	return nil, errors.New("disk on fire")
}
func (brokenStore) LoadClan(string) (*clan.Clan, error) { return nil, storage.ErrClanNotFound }
func (brokenStore) SaveClan(*clan.Clan) error           { return nil }
func (brokenStore) DeleteClan(string) error             { return storage.ErrClanNotFound }

func newTestApp(d *scriptedDisplay, client presence.Client, store game.ClanStore, exit func(int)) *App {
	settings := config.DefaultSettings()
	settings.FPS = 1000
	return New(Options{
		Display:  d,
		Store:    store,
		Settings: settings,
		Seed:     3,
		Version:  "test",
		Width:    80,
		Height:   24,
		Presence: client,
		Exit:     exit,
		Logger:   log.New(io.Discard),
	})
}

func TestRunQuitFromStartScreen(t *testing.T) {
	d := &scriptedDisplay{frames: [][]core.Event{nil, {core.QuitEvent{}}}}
	client := &recordingClient{}
	var exits []int
	a := newTestApp(d, client, nil, func(code int) { exits = append(exits, code) })

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(exits) != 1 || exits[0] != 0 {
		t.Errorf("exits = %v, want [0]", exits)
	}
	if d.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1", d.teardowns)
	}
	if d.presented != 1 {
		t.Errorf("presented = %d frames, want 1", d.presented)
	}
	if a.Reporter.Running() {
		t.Error("presence reporter still running after quit")
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	if client.logins != 1 || client.logouts != 1 {
		t.Errorf("logins = %d logouts = %d, want 1 and 1", client.logins, client.logouts)
	}
	if len(client.activities) == 0 || client.activities[0].Details != "Starting Screen" {
		t.Errorf("activities = %+v, want the start screen first", client.activities)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d := &scriptedDisplay{}
	var exits []int
	a := newTestApp(d, nil, nil, func(code int) { exits = append(exits, code) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(exits) != 0 {
		t.Errorf("exits = %v, want none on cancel", exits)
	}
	if d.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1", d.teardowns)
	}
}

func TestRunContinuesAfterLoadFailure(t *testing.T) {
	d := &scriptedDisplay{frames: [][]core.Event{{core.QuitEvent{}}}}
	a := newTestApp(d, nil, brokenStore{}, nil)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if a.State.Clan != nil {
		t.Error("clan loaded from a broken store")
	}
	if got := a.State.Switches.String(game.SwitchErrorMessage); got != game.LoadErrorMessage {
		t.Errorf("error_message = %q, want %q", got, game.LoadErrorMessage)
	}
}

func TestQuitInCampOpensSaveCheck(t *testing.T) {
	d := &scriptedDisplay{}
	a := newTestApp(d, nil, nil, nil)
	if err := a.State.NewClan("thunder"); err != nil {
		t.Fatal(err)
	}
	a.Screens.Get(game.StartScreen).ScreenSwitches(a.State)
	a.State.ChangeScreen(game.CampScreen)

	d.frames = [][]core.Event{nil, {core.QuitEvent{}}}
	for range 2 {
		if err := a.Loop.Step(0); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	if a.UI.Modal() == nil {
		t.Fatal("quit in camp did not open the save dialog")
	}
	if a.State.QuitRequested() {
		t.Error("quit requested before the player answered")
	}
}
