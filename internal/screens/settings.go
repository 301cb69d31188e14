package screens

import (
	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// SettingsScreen toggles and persists user settings.
type SettingsScreen struct {
	base
	status string
}

func (sc *SettingsScreen) ScreenSwitches(s *game.State) {
	sc.status = ""
	sc.env.UI.Clear()
	sc.layout(s)
}

// Relayout also refreshes the button labels after a toggle.
func (sc *SettingsScreen) Relayout(s *game.State) {
	sc.env.UI.Relayout(func() { sc.layout(s) })
}

func (sc *SettingsScreen) layout(s *game.State) {
	dark := ui.NewButton(0, 0, "Dark mode: "+onOff(s.Settings.DarkMode), func() {
		s.Settings.DarkMode = !s.Settings.DarkMode
		sc.env.UI.SetTheme(ui.ThemeFor(s.Settings.DarkMode))
		sc.save(s)
		sc.Relayout(s)
	})
	discord := ui.NewButton(0, 0, "Discord presence: "+onOff(s.Settings.DiscordPresence), func() {
		s.Settings.DiscordPresence = !s.Settings.DiscordPresence
		sc.save(s)
		sc.Relayout(s)
	})
	back := ui.NewButton(0, 0, "Back", func() { s.ChangeScreen(game.StartScreen) })

	sc.env.UI.Add(sc.menu(5, dark, discord, back)...)
}

func (sc *SettingsScreen) save(s *game.State) {
	if err := s.SaveSettings(); err != nil {
		s.Logger().Error("cannot save settings", "error", err)
		sc.status = "Settings could not be saved."
		return
	}
	sc.status = "Settings saved. Presence changes apply on next launch."
}

func (sc *SettingsScreen) HandleEvent(s *game.State, ev core.Event) {
	sc.backOnEsc(s, ev, game.StartScreen)
}

func (sc *SettingsScreen) OnUse(*game.State) {
	sc.heading(2, "Settings")
	if sc.status != "" {
		sc.env.Surface.DrawTextCentered(12, sc.status, sc.theme().Muted)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
