package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clangen/internal/app"
	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/logging"
	"github.com/vovakirdan/tui-clangen/internal/platform/tui"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/storage"
)

// setupLogging creates the data directory and builds the process logger.
// Console lines go to stderr only when it is not the terminal the game is
// drawn on.
func setupLogging() (*log.Logger, io.Closer) {
	if _, err := config.DataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using debug\n", err)
		level = log.DebugLevel
	}

	var console io.Writer
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		console = os.Stderr
	}

	logger, closer, err := logging.Setup(logging.Options{
		Dir:     config.ExpandHome(flagLogDir),
		Console: console,
		Level:   level,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer, _ = logging.Setup(logging.Options{Console: console, Level: level})
	}
	return logger, closer
}

// loadSettings reads settings and applies flag overrides.
func loadSettings(cmd *cobra.Command, logger *log.Logger) (config.Settings, string) {
	settings, source, err := config.LoadSettings(flagSettings)
	if err != nil {
		logger.Error("cannot load settings, using defaults", "error", err)
		settings = config.DefaultSettings()
	} else {
		logger.Debug("settings loaded", "source", source)
	}
	if cmd.Flags().Changed("fps") {
		settings.FPS = flagFPS
	}
	settings.Normalize()

	path := flagSettings
	if path == "" {
		path = config.UserSettingsPath()
	}
	return settings, path
}

// openStore opens the save database. The game still runs without one.
func openStore(logger *log.Logger) (*storage.Store, game.ClanStore) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open save database, saving is disabled", "error", err)
		return nil, nil
	}
	return store, store
}

func runGame(cmd *cobra.Command, _ []string) {
	logger, logCloser := setupLogging()
	settings, settingsPath := loadSettings(cmd, logger)
	store, clans := openStore(logger)

	closeAll := func() {
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	var client presence.Client = presence.NopClient{}
	if settings.DiscordPresence && !flagNoPresence {
		client = presence.NewDiscordClient()
	}

	display := tui.NewDisplay(nil, logger, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a := app.New(app.Options{
		Display:      display,
		Store:        clans,
		Settings:     settings,
		SettingsPath: settingsPath,
		Seed:         flagSeed,
		Version:      versionLabel(),
		Width:        width,
		Height:       height,
		Presence:     client,
		Exit: func(code int) {
			closeAll()
			os.Exit(code)
		},
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- a.Run(ctx)
	}()

	if err := display.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("display stopped", "error", err)
	}
	cancel()
	err := <-loopErr
	closeAll()

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
