package game

// ScreenID identifies one of the fixed set of screens.
type ScreenID int

const (
	StartScreen ScreenID = iota
	SettingsScreen
	SwitchClanScreen
	MakeClanScreen
	InfoScreen
	CampScreen
	ListScreen
	ProfileScreen

	// ScreenCount is the number of real screens. Registries are sized by it.
	ScreenCount
)

// NoScreen marks the previous-screen slot before the first transition.
const NoScreen ScreenID = -1

var screenNames = [ScreenCount]string{
	StartScreen:      "start screen",
	SettingsScreen:   "settings screen",
	SwitchClanScreen: "switch clan screen",
	MakeClanScreen:   "make clan screen",
	InfoScreen:       "info screen",
	CampScreen:       "clan screen",
	ListScreen:       "list screen",
	ProfileScreen:    "profile screen",
}

func (id ScreenID) String() string {
	if id.Valid() {
		return screenNames[id]
	}
	return "none"
}

// Valid reports whether id names a registered screen.
func (id ScreenID) Valid() bool {
	return id >= 0 && id < ScreenCount
}

// QuitExempt reports whether quitting from this screen skips the
// unsaved-changes prompt. These screens never hold unsaved clan edits.
func QuitExempt(id ScreenID) bool {
	switch id {
	case StartScreen, SwitchClanScreen, SettingsScreen, InfoScreen, MakeClanScreen:
		return true
	}
	return false
}
