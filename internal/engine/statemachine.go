package engine

import (
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/registry"
)

// ApplyTransition performs a pending screen switch and reports whether any
// screen was deactivated or activated.
//
// The previous screen's ExitScreen runs before the new screen's
// ScreenSwitches. Switching to the screen that is already active only
// clears the flag. If ScreenSwitches itself requests another switch, that
// request stays pending for the next frame.
func ApplyTransition(s *game.State, screens *registry.Registry) bool {
	if !s.SwitchScreens {
		return false
	}

	prev, cur := s.LastScreen, s.CurrentScreen
	if prev == cur {
		s.SwitchScreens = false
		return false
	}

	if prev.Valid() {
		screens.Get(prev).ExitScreen(s)
	}
	screens.Get(cur).ScreenSwitches(s)

	if s.CurrentScreen != cur {
		// Redirected during activation: cur is now the screen to leave.
		s.LastScreen = cur
		return true
	}
	s.SwitchScreens = false
	s.LastScreen = cur
	return true
}
