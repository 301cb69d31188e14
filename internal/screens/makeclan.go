package screens

import (
	"errors"

	"github.com/vovakirdan/tui-clangen/internal/clan"
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// MakeClanScreen asks for a clan name and founds a new clan.
type MakeClanScreen struct {
	base
	input  *ui.TextInput
	status string
}

func (sc *MakeClanScreen) ScreenSwitches(s *game.State) {
	sc.status = ""
	sc.input = nil
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *MakeClanScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

// layout places the widgets, carrying over any typed name.
func (sc *MakeClanScreen) layout(s *game.State) {
	w, _ := sc.size()

	width := clan.MaxNameLen
	typed := ""
	if sc.input != nil {
		typed = sc.input.Value()
	}
	sc.input = ui.NewTextInput((w-width-2)/2, 6, width, "name")
	sc.input.SetValue(typed)
	create := ui.NewCenteredButton(w, 9, "Create Clan", func() { sc.create(s) })
	back := ui.NewCenteredButton(w, 11, "Back", func() { s.ChangeScreen(game.StartScreen) })

	sc.env.UI.Add(sc.input, create, back)
}

func (sc *MakeClanScreen) create(s *game.State) {
	err := s.NewClan(sc.input.Value())
	switch {
	case err == nil:
		s.ChangeScreen(game.CampScreen)
	case errors.Is(err, clan.ErrInvalidName):
		sc.status = "Clan names are 2-10 letters."
	default:
		s.Logger().Error("cannot create clan", "error", err)
		sc.status = "The clan could not be saved."
	}
}

func (sc *MakeClanScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.StartScreen)
}

func (sc *MakeClanScreen) OnUse(*game.State) {
	sc.heading(2, "Name your clan")
	surf := sc.env.Surface
	if sc.input != nil {
		surf.DrawText(sc.input.Area.Right()+1, sc.input.Area.Y, "Clan", sc.theme().Text)
	}
	if sc.status != "" {
		surf.DrawTextCentered(14, sc.status, sc.theme().Error)
	}
}
