package screens

import (
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

const infoText = "Clan Generator lets you found a clan of warrior cats and watch it " +
	"grow moon by moon. Kits become apprentices at six moons and warriors at " +
	"twelve. When a leader joins StarClan the deputy takes their place.\n\n" +
	"Keys: tab and arrows move between buttons, enter selects, esc goes back, " +
	"t skips a moon in camp, f2 outlines every widget."

// InfoScreen shows help text.
type InfoScreen struct {
	base
}

func (sc *InfoScreen) ScreenSwitches(s *game.State) {
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *InfoScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *InfoScreen) layout(s *game.State) {
	w, h := sc.size()
	width := min(60, w-4)
	sc.env.UI.Add(
		&ui.TextBox{Text: infoText, Area: core.NewRect((w-width)/2, 4, width, max(1, h-10))},
		ui.NewCenteredButton(w, h-4, "Back", func() { s.ChangeScreen(game.StartScreen) }),
	)
}

func (sc *InfoScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.StartScreen)
}

// OnUse draws the page. A click outside the buttons also goes back.
func (sc *InfoScreen) OnUse(s *game.State) {
	if s.ConsumeClick() {
		s.ChangeScreen(game.StartScreen)
	}
	sc.heading(2, "About")
	if s.Version != "" {
		sc.env.Surface.DrawTextCentered(sc.env.Surface.Height()-6, "Version "+s.Version, sc.theme().Muted)
	}
}
