package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

var rankOrder = []clan.Status{
	clan.StatusLeader, clan.StatusDeputy, clan.StatusMedicine, clan.StatusWarrior,
	clan.StatusApprentice, clan.StatusKitten, clan.StatusElder,
}

// CampScreen is the clan overview where moons are advanced.
type CampScreen struct {
	base
	status string
}

func (sc *CampScreen) ScreenSwitches(s *game.State) {
	if s.Clan == nil {
		s.ChangeScreen(game.StartScreen)
		return
	}
	sc.status = ""
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *CampScreen) Relayout(s *game.State) {
	if s.Clan == nil {
		return
	}
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *CampScreen) layout(s *game.State) {
	w, h := sc.size()

	buttons := []*ui.Button{
		ui.NewButton(0, 0, "Timeskip", func() { sc.timeskip(s) }),
		ui.NewButton(0, 0, "Cats", func() {
			s.Switches.Set(game.SwitchListPage, 0)
			s.ChangeScreen(game.ListScreen)
		}),
		ui.NewButton(0, 0, "Save", func() { sc.save(s) }),
		ui.NewButton(0, 0, "Main Menu", func() { s.ChangeScreen(game.StartScreen) }),
	}

	total := 0
	for _, b := range buttons {
		total += b.Area.W + 2
	}
	x := max(0, (w-total)/2)
	for _, b := range buttons {
		b.Area.X, b.Area.Y = x, h-3
		x += b.Area.W + 2
		sc.env.UI.Add(b)
	}
}

func (sc *CampScreen) timeskip(s *game.State) {
	if err := s.TimeSkip(); err != nil {
		sc.status = "Autosave failed."
		return
	}
	sc.status = ""
}

func (sc *CampScreen) save(s *game.State) {
	if err := s.SaveClan(); err != nil {
		s.Logger().Error("cannot save clan", "error", err)
		sc.status = "The clan could not be saved."
		return
	}
	sc.status = "Saved."
}

func (sc *CampScreen) HandleEvent(s *game.State, ev core.Event) {
	msg, ok := ev.(tea.KeyMsg)
	if !ok || sc.env.UI.Modal() != nil || s.Clan == nil {
		return
	}
	if key.Matches(msg, keys.TimeSkip) {
		sc.timeskip(s)
	}
}

func (sc *CampScreen) OnUse(s *game.State) {
	c := s.Clan
	if c == nil {
		return
	}
	surf := sc.env.Surface
	th := sc.theme()

	title := fmt.Sprintf("%s - Moon %d", c.FullName(), c.Moons)
	if s.Dirty {
		title += " *"
	}
	sc.heading(1, title)

	counts := c.CountByStatus()
	y := 3
	for _, rank := range rankOrder {
		line := fmt.Sprintf("%-13s %d", rank, counts[rank])
		switch rank {
		case clan.StatusLeader:
			if l := c.Leader(); l != nil && !l.Dead {
				line += "  " + l.Name()
			}
		case clan.StatusDeputy:
			if d := c.Find(c.DeputyID); d != nil && !d.Dead {
				line += "  " + d.Name()
			}
		case clan.StatusMedicine:
			if m := c.Find(c.MedicineID); m != nil && !m.Dead {
				line += "  " + m.Name()
			}
		}
		surf.DrawText(2, y, line, th.Text)
		y++
	}

	y++
	surf.DrawText(2, y, "This moon:", th.Accent)
	box := &ui.TextBox{
		Text:  strings.Join(s.Events, "\n"),
		Area:  core.NewRect(2, y+1, max(1, surf.Width()-4), max(1, surf.Height()-y-6)),
		Muted: len(s.Events) == 0,
	}
	if len(s.Events) == 0 {
		box.Text = "Press t or Timeskip to advance a moon."
	}
	box.Draw(surf, th, false)

	if sc.status != "" {
		surf.DrawTextCentered(surf.Height()-5, sc.status, th.Muted)
	}
}
