// Package game holds the state shared by every screen: which screen is
// active, the pending-switch flag, named switches, and the loaded clan.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/logging"
	"github.com/vovakirdan/tui-clangen/internal/presence"
	"github.com/vovakirdan/tui-clangen/internal/storage"
)

// ErrNoClan is returned by operations that need a loaded clan.
var ErrNoClan = errors.New("game: no clan loaded")

// ErrClanLoaded is returned when deleting the clan that is being played.
var ErrClanLoaded = errors.New("game: clan is loaded")

// ClanStore persists clans. *storage.Store implements it.
type ClanStore interface {
	ListClans() ([]storage.ClanSummary, error)
	LoadClan(name string) (*clan.Clan, error)
	SaveClan(c *clan.Clan) error
	DeleteClan(name string) error
}

// Options configures NewState.
type Options struct {
	Store        ClanStore // nil disables persistence
	Settings     config.Settings
	SettingsPath string // where the settings screen saves; empty disables saving
	Seed         int64  // 0 picks a time-based seed
	Version      string
	Logger       *log.Logger
}

// State is owned by the frame loop goroutine and passed to every screen.
type State struct {
	CurrentScreen ScreenID
	LastScreen    ScreenID
	SwitchScreens bool
	Switches      Switches

	// Clicked is set when a pointer press arrived during the previous frame.
	// Screens read it from OnUse; it is cleared after one frame or a screen switch.
	Clicked bool

	// Clan is nil until a load or creation succeeds.
	Clan  *clan.Clan
	Dirty bool

	Settings     config.Settings
	SettingsPath string

	// Events holds the most recent moon's happenings.
	Events []string

	Playtime time.Duration
	Started  time.Time
	Version  string

	quitRequested bool
	store         ClanStore
	rng           *rand.Rand
	logger        *log.Logger
}

// NewState returns a state on the start screen with no clan.
func NewState(opts Options) *State {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &State{
		CurrentScreen: StartScreen,
		LastScreen:    NoScreen,
		Switches:      make(Switches),
		Settings:      opts.Settings,
		SettingsPath:  opts.SettingsPath,
		Started:       time.Now(),
		Version:       opts.Version,
		store:         opts.Store,
		rng:           rand.New(rand.NewSource(seed)),
		logger:        logger,
	}
}

// ChangeScreen requests a switch to id at the end of the current frame.
// Repeated requests within one frame keep the first previous screen.
func (s *State) ChangeScreen(id ScreenID) {
	if !s.SwitchScreens {
		s.LastScreen = s.CurrentScreen
	}
	s.CurrentScreen = id
	s.SwitchScreens = true
}

// ConsumeClick returns the click flag and clears it.
func (s *State) ConsumeClick() bool {
	c := s.Clicked
	s.Clicked = false
	return c
}

// RequestQuit asks the loop to run the shutdown sequence after this frame's events.
func (s *State) RequestQuit() {
	s.quitRequested = true
}

// QuitRequested reports whether RequestQuit was called.
func (s *State) QuitRequested() bool {
	return s.quitRequested
}

// QuitAllowed reports whether a quit can skip the unsaved-changes prompt.
func (s *State) QuitAllowed() bool {
	return QuitExempt(s.CurrentScreen) || s.Clan == nil
}

// Update does per-frame bookkeeping.
func (s *State) Update(dt time.Duration) {
	s.Playtime += dt
}

// Rand returns the game's random source.
func (s *State) Rand() *rand.Rand {
	return s.rng
}

// Logger returns the game logger.
func (s *State) Logger() *log.Logger {
	return s.logger
}

// LoadSaves reads the saved clan list and loads the most recently played
// clan. Failures never propagate: they are logged with a stack trace and
// surfaced through the error_message switch, and the game continues with
// no clan.
func (s *State) LoadSaves() {
	defer func() {
		if r := recover(); r != nil {
			s.loadFailed(fmt.Errorf("game: panic while loading saves: %v", r))
		}
	}()

	if s.store == nil {
		return
	}

	list, err := s.store.ListClans()
	if err != nil {
		s.loadFailed(err)
		return
	}
	s.setClanList(list)
	if len(list) == 0 {
		return
	}

	c, err := s.store.LoadClan(list[0].Name)
	if err != nil {
		s.loadFailed(err)
		return
	}
	s.Clan = c
	s.Dirty = false
}

func (s *State) loadFailed(err error) {
	s.logger.Error("failed to load saved clans", "error", err, logging.StackKey, string(debug.Stack()))
	if s.Switches.String(SwitchErrorMessage) == "" {
		s.Switches.Set(SwitchErrorMessage, LoadErrorMessage)
	}
}

func (s *State) setClanList(list []storage.ClanSummary) {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	s.Switches.Set(SwitchClanList, names)
}

// RefreshClanList rereads the saved clan names.
func (s *State) RefreshClanList() error {
	if s.store == nil {
		return nil
	}
	list, err := s.store.ListClans()
	if err != nil {
		return fmt.Errorf("game: cannot list clans: %w", err)
	}
	s.setClanList(list)
	return nil
}

// LoadClan replaces the current clan with a saved one.
func (s *State) LoadClan(name string) error {
	if s.store == nil {
		return fmt.Errorf("game: cannot load %s: no save store", name)
	}
	c, err := s.store.LoadClan(name)
	if err != nil {
		return fmt.Errorf("game: cannot load %s: %w", name, err)
	}
	s.Clan = c
	s.Dirty = false
	s.Events = nil
	return nil
}

// SaveClan persists the current clan.
func (s *State) SaveClan() error {
	if s.Clan == nil {
		return ErrNoClan
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveClan(s.Clan); err != nil {
		return fmt.Errorf("game: cannot save %s: %w", s.Clan.FullName(), err)
	}
	s.Dirty = false
	return s.RefreshClanList()
}

// DeleteClan removes a saved clan. The loaded clan cannot be deleted.
func (s *State) DeleteClan(name string) error {
	if s.Clan != nil && s.Clan.Name == name {
		return fmt.Errorf("%w: %s", ErrClanLoaded, name)
	}
	if s.store == nil {
		return fmt.Errorf("game: cannot delete %s: no save store", name)
	}
	if err := s.store.DeleteClan(name); err != nil {
		return fmt.Errorf("game: cannot delete %s: %w", name, err)
	}
	s.logger.Info("clan deleted", "clan", name)
	return s.RefreshClanList()
}

// NewClan generates a clan from a name, saves it, and makes it current.
func (s *State) NewClan(name string) error {
	c, err := clan.Generate(name, s.rng.Int63())
	if err != nil {
		return err
	}
	s.Clan = c
	s.Events = nil
	s.Dirty = true
	return s.SaveClan()
}

// TimeSkip advances the clan one moon, autosaving on the configured interval.
func (s *State) TimeSkip() error {
	if s.Clan == nil {
		return ErrNoClan
	}
	s.Events = s.Clan.TimeSkip(s.rng)
	s.Dirty = true

	if n := s.Settings.AutosaveMoons; n > 0 && s.Clan.Moons%n == 0 {
		if err := s.SaveClan(); err != nil {
			s.logger.Error("autosave failed", "error", err)
			return err
		}
		s.logger.Info("autosaved", "clan", s.Clan.FullName(), "moons", s.Clan.Moons)
	}
	return nil
}

// SaveSettings persists the current settings, if a path is configured.
func (s *State) SaveSettings() error {
	if s.SettingsPath == "" {
		return nil
	}
	return config.SaveSettings(s.SettingsPath, s.Settings)
}

// Activity describes the current screen for the presence service.
func (s *State) Activity() presence.Activity {
	a := presence.Activity{Start: s.Started}
	switch s.CurrentScreen {
	case StartScreen:
		a.Details = "Starting Screen"
	case SettingsScreen:
		a.Details = "Browsing Settings"
	case InfoScreen:
		a.Details = "Reading Info"
	case MakeClanScreen:
		a.Details = "Making a Clan"
	case SwitchClanScreen:
		a.Details = "Switching Clans"
	case CampScreen:
		a.Details = "In Camp"
	case ListScreen:
		a.Details = "Browsing Cats"
	case ProfileScreen:
		a.Details = "Viewing a Cat"
	}
	if s.Clan != nil && s.CurrentScreen >= CampScreen {
		a.State = fmt.Sprintf("%s, Moon %d", s.Clan.FullName(), s.Clan.Moons)
	}
	return a
}
