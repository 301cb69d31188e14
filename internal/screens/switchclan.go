package screens

import (
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// SwitchClanScreen lists saved clans, loads the chosen one, and deletes
// clans after a confirmation.
type SwitchClanScreen struct {
	base
	status string
}

func (sc *SwitchClanScreen) ScreenSwitches(s *game.State) {
	sc.status = ""
	if err := s.RefreshClanList(); err != nil {
		s.Logger().Error("cannot list clans", "error", err)
		sc.status = "Saved clans could not be read."
	}
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *SwitchClanScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *SwitchClanScreen) layout(s *game.State) {
	_, h := sc.size()
	maxRows := max(1, (h-10)/2)

	var (
		buttons []*ui.Button
		deletes []*ui.Button
	)
	for i, name := range s.Switches.Strings(game.SwitchClanList) {
		if i >= maxRows {
			break
		}
		current := s.Clan != nil && s.Clan.Name == name
		load := ui.NewButton(0, 0, name+"Clan", func() { sc.load(s, name) })
		load.Disabled = current
		del := ui.NewButton(0, 0, "Delete", func() { sc.confirmDelete(s, name) })
		del.Disabled = current
		buttons = append(buttons, load)
		deletes = append(deletes, del)
	}
	buttons = append(buttons, ui.NewButton(0, 0, "Back", func() { s.ChangeScreen(game.StartScreen) }))

	rows := sc.menu(4, buttons...)
	for i, del := range deletes {
		load := buttons[i]
		del.Area.X, del.Area.Y = load.Area.Right()+2, load.Area.Y
		sc.env.UI.Add(load, del)
	}
	sc.env.UI.Add(rows[len(deletes):]...)
}

func (sc *SwitchClanScreen) load(s *game.State, name string) {
	if err := s.LoadClan(name); err != nil {
		s.Logger().Error("cannot switch clan", "clan", name, "error", err)
		sc.status = "Could not load " + name + "Clan."
		return
	}
	s.ChangeScreen(game.CampScreen)
}

func (sc *SwitchClanScreen) confirmDelete(s *game.State, name string) {
	m := sc.env.UI
	del := ui.NewButton(0, 0, "Delete", func() {
		sc.delete(s, name)
		m.Clear()
		sc.layout(s)
	})
	cancel := ui.NewButton(0, 0, "Cancel", m.CloseModal)

	w, h := m.Size()
	m.PushModal(ui.NewDialog(w, h, 46, 9, "Delete Clan",
		"Delete "+name+"Clan? This cannot be undone.", cancel, del))
}

func (sc *SwitchClanScreen) delete(s *game.State, name string) {
	if err := s.DeleteClan(name); err != nil {
		s.Logger().Error("cannot delete clan", "clan", name, "error", err)
		sc.status = "Could not delete " + name + "Clan."
		return
	}
	sc.status = name + "Clan was deleted."
}

func (sc *SwitchClanScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.StartScreen)
}

func (sc *SwitchClanScreen) OnUse(s *game.State) {
	sc.heading(2, "Switch Clan")
	if sc.status != "" {
		sc.env.Surface.DrawTextCentered(sc.env.Surface.Height()-3, sc.status, sc.theme().Error)
	}
}
