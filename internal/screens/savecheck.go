package screens

import (
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// SaveCheck is the dialog shown when the player quits from inside a clan.
type SaveCheck struct {
	env *Env
}

// NewSaveCheck creates the quit prompt.
func NewSaveCheck(env *Env) *SaveCheck {
	return &SaveCheck{env: env}
}

// Open shows the dialog unless one is already open.
func (p *SaveCheck) Open(s *game.State) {
	m := p.env.UI
	if m.Modal() != nil {
		return
	}

	msg := "Your clan is saved. Quit now?"
	if s.Dirty {
		msg = "You have unsaved changes. Save before quitting?"
	}

	saveQuit := ui.NewButton(0, 0, "Save & Quit", func() {
		if err := s.SaveClan(); err != nil {
			s.Logger().Error("cannot save before quitting", "error", err)
		}
		s.RequestQuit()
	})
	saveQuit.Disabled = !s.Dirty
	quit := ui.NewButton(0, 0, "Quit", s.RequestQuit)
	cancel := ui.NewButton(0, 0, "Cancel", m.CloseModal)

	w, h := m.Size()
	m.PushModal(ui.NewDialog(w, h, 46, 9, "Quit", msg, saveQuit, quit, cancel))
}
