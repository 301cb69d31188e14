// Package app assembles one game: state, screens, widget manager, presence
// reporter and frame loop around a display.
package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/engine"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/logging"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/registry"
	"github.com/vovakirdan/tui-clangen/internal/screens"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// Display is what the game needs from a terminal backend.
type Display interface {
	engine.Display
	engine.EventSource
}

// Options configures New.
type Options struct {
	Display      Display
	Store        game.ClanStore
	Settings     config.Settings
	SettingsPath string
	Seed         int64
	Version      string
	Width        int
	Height       int

	// Presence is the presence backend; nil disables presence.
	Presence presence.Client

	// Exit ends the process after a quit; nil returns from Run instead.
	Exit func(code int)

	Logger *log.Logger
}

// App is one running game.
type App struct {
	State    *game.State
	UI       *ui.Manager
	Surface  *core.Surface
	Screens  *registry.Registry
	Reporter *presence.Reporter
	Shutdown *engine.Shutdown
	Loop     *engine.Loop

	display Display
	logger  *log.Logger
}

// New wires a game. Nothing starts until Run.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	settings := opts.Settings
	settings.Normalize()

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}

	state := game.NewState(game.Options{
		Store:        opts.Store,
		Settings:     settings,
		SettingsPath: opts.SettingsPath,
		Seed:         opts.Seed,
		Version:      opts.Version,
		Logger:       logger,
	})

	env := &screens.Env{
		UI:      ui.NewManager(width, height, ui.ThemeFor(settings.DarkMode), opts.Version),
		Surface: core.NewSurface(width, height),
	}
	reg := screens.Build(env)
	reporter := presence.NewReporter(opts.Presence, logger)

	shutdown := &engine.Shutdown{
		Presence:    reporter,
		Display:     opts.Display,
		JoinTimeout: engine.DefaultJoinTimeout,
		Exit:        opts.Exit,
		Logger:      logger,
	}

	loop := engine.New(engine.Options{
		State:    state,
		Screens:  reg,
		UI:       env.UI,
		Display:  opts.Display,
		Events:   opts.Display,
		Presence: reporter,
		Prompt:   screens.NewSaveCheck(env),
		Surface:  env.Surface,
		Clock:    engine.NewClock(settings.FPS),
		Shutdown: shutdown,
		Logger:   logger,
	})

	return &App{
		State:    state,
		UI:       env.UI,
		Surface:  env.Surface,
		Screens:  reg,
		Reporter: reporter,
		Shutdown: shutdown,
		Loop:     loop,
		display:  opts.Display,
		logger:   logger,
	}
}

// Run starts presence, loads the saves, activates the start screen and runs
// the frame loop. It returns nil after a quit and the loop error otherwise;
// in both cases presence is closed and the display torn down.
func (a *App) Run(ctx context.Context) (err error) {
	defer logging.Recover(a.logger, a.Shutdown.Stop)

	a.Reporter.Start()
	a.Reporter.Connect()
	a.Reporter.Update(a.State.Activity())

	a.State.LoadSaves()
	a.Screens.Get(a.State.CurrentScreen).ScreenSwitches(a.State)

	err = a.Loop.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.logger.Debug("game loop stopped", "reason", err)
	default:
		logging.LogCrash(a.logger, err)
	}
	a.Shutdown.Stop()
	return err
}
