package screens

import (
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

var titleArt = []string{
	`        _                              `,
	`   ___ | | __ _ _ __   __ _  ___ _ __  `,
	`  / __|| |/ _' | '_ \ / _' |/ _ \ '_ \ `,
	` | (__ | | (_| | | | | (_| |  __/ | | |`,
	`  \___||_|\__,_|_| |_|\__, |\___|_| |_|`,
	`                      |___/            `,
}

// StartScreen is the main menu. It paints its own background.
type StartScreen struct {
	base
}

func (sc *StartScreen) ScreenSwitches(s *game.State) {
	sc.env.UI.Clear()
	sc.layout(s)
}

func (sc *StartScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *StartScreen) layout(s *game.State) {
	_, h := sc.size()

	cont := ui.NewButton(0, 0, "Continue", func() { s.ChangeScreen(game.CampScreen) })
	cont.Disabled = s.Clan == nil
	switchClan := ui.NewButton(0, 0, "Switch Clan", func() { s.ChangeScreen(game.SwitchClanScreen) })
	switchClan.Disabled = len(s.Switches.Strings(game.SwitchClanList)) == 0

	top := len(titleArt) + 4
	if h < top+12 {
		top = max(1, h-12)
	}
	sc.env.UI.Add(sc.menu(top,
		cont,
		switchClan,
		ui.NewButton(0, 0, "Make New Clan", func() { s.ChangeScreen(game.MakeClanScreen) }),
		ui.NewButton(0, 0, "Settings", func() { s.ChangeScreen(game.SettingsScreen) }),
		ui.NewButton(0, 0, "Info", func() { s.ChangeScreen(game.InfoScreen) }),
		ui.NewButton(0, 0, "Quit", s.RequestQuit),
	)...)
}

func (sc *StartScreen) OnUse(s *game.State) {
	surf := sc.env.Surface
	surf.Fill(core.ColorBgTitle)
	for i, line := range titleArt {
		surf.DrawTextCentered(1+i, line, core.ColorBrightYellow)
	}

	if s.Clan != nil {
		surf.DrawTextCentered(len(titleArt)+2, "Current clan: "+s.Clan.FullName(), core.ColorBrightWhite)
	}
	if msg := s.Switches.String(game.SwitchErrorMessage); msg != "" {
		surf.DrawTextCentered(surf.Height()-3, msg, core.ColorBrightRed)
	}
}
