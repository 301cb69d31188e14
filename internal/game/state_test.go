package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/storage"
)

type fakeStore struct {
	clans   map[string]*clan.Clan
	order   []string
	listErr error
	loadErr error
	saves   int
	panics  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{clans: make(map[string]*clan.Clan)}
}

func (f *fakeStore) ListClans() ([]storage.ClanSummary, error) {
	if f.panics {
		panic("corrupt save")
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []storage.ClanSummary
	for _, name := range f.order {
		out = append(out, storage.ClanSummary{Name: name})
	}
	return out, nil
}

func (f *fakeStore) LoadClan(name string) (*clan.Clan, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	c, ok := f.clans[name]
	if !ok {
		return nil, storage.ErrClanNotFound
	}
	return c, nil
}

func (f *fakeStore) SaveClan(c *clan.Clan) error {
	f.saves++
	if _, ok := f.clans[c.Name]; !ok {
		f.order = append([]string{c.Name}, f.order...)
	}
	f.clans[c.Name] = c
	return nil
}

func (f *fakeStore) DeleteClan(name string) error {
	if _, ok := f.clans[name]; !ok {
		return storage.ErrClanNotFound
	}
	delete(f.clans, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestState(t *testing.T, store ClanStore) (*State, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := NewState(Options{
		Store:    store,
		Settings: config.DefaultSettings(),
		Seed:     1,
		Logger:   log.New(&buf),
	})
	return s, &buf
}

func TestNewStateDefaults(t *testing.T) {
	s, _ := newTestState(t, nil)
	if s.CurrentScreen != StartScreen {
		t.Errorf("CurrentScreen = %v, want start screen", s.CurrentScreen)
	}
	if s.LastScreen != NoScreen {
		t.Errorf("LastScreen = %v, want none", s.LastScreen)
	}
	if s.SwitchScreens {
		t.Error("SwitchScreens = true at startup")
	}
	if s.Clan != nil {
		t.Error("Clan set at startup")
	}
}

func TestChangeScreen(t *testing.T) {
	s, _ := newTestState(t, nil)

	s.ChangeScreen(SettingsScreen)
	if s.CurrentScreen != SettingsScreen || s.LastScreen != StartScreen || !s.SwitchScreens {
		t.Errorf("after first change: cur=%v last=%v switch=%v", s.CurrentScreen, s.LastScreen, s.SwitchScreens)
	}

	// A second request in the same frame keeps the first previous screen.
	s.ChangeScreen(InfoScreen)
	if s.CurrentScreen != InfoScreen || s.LastScreen != StartScreen {
		t.Errorf("after second change: cur=%v last=%v", s.CurrentScreen, s.LastScreen)
	}
}

func TestQuitAllowed(t *testing.T) {
	tests := []struct {
		screen  ScreenID
		hasClan bool
		want    bool
	}{
		{StartScreen, true, true},
		{SettingsScreen, true, true},
		{SwitchClanScreen, true, true},
		{MakeClanScreen, true, true},
		{InfoScreen, true, true},
		{CampScreen, true, false},
		{ListScreen, true, false},
		{ProfileScreen, true, false},
		{CampScreen, false, true},
	}
	for _, tt := range tests {
		s, _ := newTestState(t, nil)
		s.CurrentScreen = tt.screen
		if tt.hasClan {
			s.Clan = &clan.Clan{Name: "Thunder"}
		}
		if got := s.QuitAllowed(); got != tt.want {
			t.Errorf("QuitAllowed() on %v (clan=%v) = %v, want %v", tt.screen, tt.hasClan, got, tt.want)
		}
	}
}

func TestScreenIDString(t *testing.T) {
	if StartScreen.String() != "start screen" {
		t.Errorf("StartScreen.String() = %q", StartScreen.String())
	}
	if CampScreen.String() != "clan screen" {
		t.Errorf("CampScreen.String() = %q", CampScreen.String())
	}
	if NoScreen.String() != "none" || ScreenCount.String() != "none" {
		t.Error("invalid ids should stringify as none")
	}
}

func TestLoadSavesLoadsMostRecent(t *testing.T) {
	store := newFakeStore()
	older, _ := clan.Generate("wind", 1)
	newer, _ := clan.Generate("river", 2)
	store.SaveClan(older)
	store.SaveClan(newer)

	s, _ := newTestState(t, store)
	s.LoadSaves()

	if s.Clan == nil || s.Clan.Name != "River" {
		t.Fatalf("loaded clan = %+v, want River", s.Clan)
	}
	names := s.Switches.Strings(SwitchClanList)
	if len(names) != 2 || names[0] != "River" {
		t.Errorf("clan_list = %v", names)
	}
	if s.Switches.String(SwitchErrorMessage) != "" {
		t.Error("error_message set on successful load")
	}
}

func TestLoadSavesNoClans(t *testing.T) {
	s, _ := newTestState(t, newFakeStore())
	s.LoadSaves()
	if s.Clan != nil {
		t.Error("Clan set with empty store")
	}
	if s.Switches.String(SwitchErrorMessage) != "" {
		t.Error("error_message set with empty store")
	}
}

func TestLoadSavesFailure(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{"list error", &fakeStore{clans: map[string]*clan.Clan{}, listErr: errors.New("disk gone")}},
		{"load error", &fakeStore{clans: map[string]*clan.Clan{}, order: []string{"Sky"}, loadErr: errors.New("bad row")}},
		{"panic", &fakeStore{clans: map[string]*clan.Clan{}, panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestState(t, tt.store)
			s.LoadSaves()

			if s.Clan != nil {
				t.Error("Clan set after failed load")
			}
			if got := s.Switches.String(SwitchErrorMessage); got != LoadErrorMessage {
				t.Errorf("error_message = %q, want %q", got, LoadErrorMessage)
			}
			if !strings.Contains(buf.String(), "failed to load saved clans") {
				t.Errorf("failure not logged: %q", buf.String())
			}
			if !strings.Contains(buf.String(), "goroutine") {
				t.Error("failure logged without stack")
			}
		})
	}
}

func TestLoadSavesKeepsExistingErrorMessage(t *testing.T) {
	store := &fakeStore{clans: map[string]*clan.Clan{}, listErr: errors.New("x")}
	s, _ := newTestState(t, store)
	s.Switches.Set(SwitchErrorMessage, "earlier problem")

	s.LoadSaves()

	if got := s.Switches.String(SwitchErrorMessage); got != "earlier problem" {
		t.Errorf("error_message = %q, want earlier message kept", got)
	}
}

func TestNewClanAndSave(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestState(t, store)

	if err := s.NewClan("shadow"); err != nil {
		t.Fatalf("NewClan() failed: %v", err)
	}
	if s.Clan == nil || s.Clan.Name != "Shadow" {
		t.Fatalf("Clan = %+v", s.Clan)
	}
	if s.Dirty {
		t.Error("Dirty after NewClan saved")
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if names := s.Switches.Strings(SwitchClanList); len(names) != 1 || names[0] != "Shadow" {
		t.Errorf("clan_list = %v", names)
	}
}

func TestNewClanInvalidName(t *testing.T) {
	s, _ := newTestState(t, newFakeStore())
	if err := s.NewClan("!"); !errors.Is(err, clan.ErrInvalidName) {
		t.Errorf("NewClan error = %v, want ErrInvalidName", err)
	}
	if s.Clan != nil {
		t.Error("Clan set after invalid name")
	}
}

func TestDeleteClan(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestState(t, store)
	for _, name := range []string{"shadow", "wind"} {
		if err := s.NewClan(name); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.DeleteClan("Wind"); !errors.Is(err, ErrClanLoaded) {
		t.Errorf("deleting the loaded clan: error = %v, want ErrClanLoaded", err)
	}
	if err := s.DeleteClan("Shadow"); err != nil {
		t.Fatalf("DeleteClan() failed: %v", err)
	}
	if names := s.Switches.Strings(SwitchClanList); len(names) != 1 || names[0] != "Wind" {
		t.Errorf("clan_list = %v, want [Wind]", names)
	}
	if err := s.DeleteClan("Shadow"); !errors.Is(err, storage.ErrClanNotFound) {
		t.Errorf("second DeleteClan error = %v, want ErrClanNotFound", err)
	}
}

func TestTimeSkipAutosave(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestState(t, store)
	s.Settings.AutosaveMoons = 2

	if err := s.NewClan("sky"); err != nil {
		t.Fatal(err)
	}
	store.saves = 0

	if err := s.TimeSkip(); err != nil {
		t.Fatal(err)
	}
	if !s.Dirty || store.saves != 0 {
		t.Errorf("after moon 1: dirty=%v saves=%d, want dirty and unsaved", s.Dirty, store.saves)
	}
	if len(s.Events) == 0 {
		t.Error("no events recorded")
	}

	if err := s.TimeSkip(); err != nil {
		t.Fatal(err)
	}
	if s.Dirty || store.saves != 1 {
		t.Errorf("after moon 2: dirty=%v saves=%d, want autosaved", s.Dirty, store.saves)
	}
}

func TestTimeSkipNoClan(t *testing.T) {
	s, _ := newTestState(t, nil)
	if err := s.TimeSkip(); !errors.Is(err, ErrNoClan) {
		t.Errorf("TimeSkip() error = %v, want ErrNoClan", err)
	}
}

func TestLoadClanMissing(t *testing.T) {
	s, _ := newTestState(t, newFakeStore())
	err := s.LoadClan("Ghost")
	if !errors.Is(err, storage.ErrClanNotFound) {
		t.Errorf("LoadClan error = %v, want ErrClanNotFound", err)
	}
}

func TestUpdateAccumulatesPlaytime(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Update(time.Second / 30)
	s.Update(time.Second / 30)
	if s.Playtime != 2*(time.Second/30) {
		t.Errorf("Playtime = %v", s.Playtime)
	}
}

func TestConsumeClick(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Clicked = true
	if !s.ConsumeClick() {
		t.Error("ConsumeClick() = false, want true")
	}
	if s.ConsumeClick() {
		t.Error("click not cleared")
	}
}

func TestActivity(t *testing.T) {
	s, _ := newTestState(t, nil)
	if a := s.Activity(); a.Details != "Starting Screen" || a.State != "" {
		t.Errorf("start activity = %+v", a)
	}

	s.Clan = &clan.Clan{Name: "Thunder", Moons: 7}
	s.CurrentScreen = CampScreen
	a := s.Activity()
	if a.Details != "In Camp" || a.State != "ThunderClan, Moon 7" {
		t.Errorf("camp activity = %+v", a)
	}
	if a.Start != s.Started {
		t.Error("activity start time not set")
	}
}

func TestSwitchesTypedAccess(t *testing.T) {
	sw := make(Switches)
	sw.Set("flag", true)
	sw.Set("msg", "hi")
	sw.Set("page", 3)

	if !sw.Bool("flag") || sw.String("msg") != "hi" || sw.Int("page") != 3 {
		t.Errorf("typed getters returned wrong values: %v", sw)
	}
	if sw.Bool("msg") || sw.String("flag") != "" || sw.Strings("missing") != nil {
		t.Error("mismatched types should return zero values")
	}
}
