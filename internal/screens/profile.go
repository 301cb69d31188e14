package screens

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// ProfileScreen shows one cat, chosen through the "cat" switch.
type ProfileScreen struct {
	base
}

func (sc *ProfileScreen) cat(s *game.State) *clan.Cat {
	if s.Clan == nil {
		return nil
	}
	return s.Clan.Find(s.Switches.String(game.SwitchCat))
}

func (sc *ProfileScreen) ScreenSwitches(s *game.State) {
	if sc.cat(s) == nil {
		s.ChangeScreen(game.ListScreen)
		return
	}
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *ProfileScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *ProfileScreen) layout(s *game.State) {
	w, h := sc.size()
	sc.env.UI.Add(ui.NewCenteredButton(w, h-3, "Back", func() { s.ChangeScreen(game.ListScreen) }))
}

func (sc *ProfileScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.ListScreen)
}

func (sc *ProfileScreen) OnUse(s *game.State) {
	cat := sc.cat(s)
	if cat == nil {
		return
	}
	th := sc.theme()
	surf := sc.env.Surface
	sc.heading(1, cat.Name())

	lines := []string{
		"Rank:   " + string(cat.Status),
		fmt.Sprintf("Age:    %d moons", cat.Moons),
		"Gender: " + cat.Gender,
		"Pelt:   " + cat.Pelt,
	}
	if m := s.Clan.Find(cat.MentorID); m != nil {
		lines = append(lines, "Mentor: "+m.Name())
	}
	var apprentices []string
	for _, other := range s.Clan.Living() {
		if other.MentorID == cat.ID {
			apprentices = append(apprentices, other.Name())
		}
	}
	if len(apprentices) > 0 {
		lines = append(lines, "Apprentices: "+strings.Join(apprentices, ", "))
	}

	x := max(2, surf.Width()/2-16)
	for i, line := range lines {
		surf.DrawText(x, 3+i, line, th.Text)
	}
}
