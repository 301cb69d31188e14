package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// ListScreen pages through the living cats of the clan.
type ListScreen struct {
	base
}

func (sc *ListScreen) pageSize() int {
	_, h := sc.size()
	return max(1, h-9)
}

func (sc *ListScreen) ScreenSwitches(s *game.State) {
	if s.Clan == nil {
		s.ChangeScreen(game.StartScreen)
		return
	}
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *ListScreen) Relayout(s *game.State) {
	if s.Clan == nil {
		return
	}
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

// turnPage shows another page with focus on the first cat.
func (sc *ListScreen) turnPage(s *game.State, page int) {
	s.Switches.Set(game.SwitchListPage, page)
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *ListScreen) layout(s *game.State) {
	w, h := sc.size()

	cats := s.Clan.Living()
	size := sc.pageSize()
	pages := max(1, (len(cats)+size-1)/size)
	page := min(max(s.Switches.Int(game.SwitchListPage), 0), pages-1)
	s.Switches.Set(game.SwitchListPage, page)

	start := page * size
	end := min(start+size, len(cats))
	for i, cat := range cats[start:end] {
		id := cat.ID
		label := fmt.Sprintf("%-14s %-12s %3d moons", cat.Name(), cat.Status, cat.Moons)
		sc.env.UI.Add(ui.NewButton(max(0, (w-len(label)-4)/2), 3+i, label, func() {
			s.Switches.Set(game.SwitchCat, id)
			s.ChangeScreen(game.ProfileScreen)
		}))
	}

	prev := ui.NewButton(0, h-3, "<", func() { sc.turnPage(s, page-1) })
	prev.Disabled = page == 0
	back := ui.NewButton(0, h-3, "Back", func() { s.ChangeScreen(game.CampScreen) })
	next := ui.NewButton(0, h-3, ">", func() { sc.turnPage(s, page+1) })
	next.Disabled = page >= pages-1

	x := (w - prev.Area.W - back.Area.W - next.Area.W - 4) / 2
	for _, b := range []*ui.Button{prev, back, next} {
		b.Area.X = max(0, x)
		x += b.Area.W + 2
	}
	sc.env.UI.Add(prev, back, next)
}

func (sc *ListScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.CampScreen)
}

func (sc *ListScreen) OnUse(s *game.State) {
	if s.Clan == nil {
		return
	}
	living := len(s.Clan.Living())
	size := sc.pageSize()
	pages := max(1, (living+size-1)/size)
	sc.heading(1, fmt.Sprintf("Cats of %s (%d)  page %d/%d",
		s.Clan.FullName(), living, s.Switches.Int(game.SwitchListPage)+1, pages))
}
