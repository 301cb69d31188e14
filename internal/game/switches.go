package game

// Well-known switch keys.
const (
	SwitchErrorMessage = "error_message"
	SwitchClanList     = "clan_list"
	SwitchCat          = "cat"
	SwitchListPage     = "list_page"
)

// LoadErrorMessage is shown on the start screen when saved clans cannot be read.
const LoadErrorMessage = "There was an error loading the cats file!"

// Switches is a bag of named flags and values shared between screens.
type Switches map[string]any

// Set stores a value.
func (s Switches) Set(key string, v any) {
	s[key] = v
}

// Bool returns the value at key, or false if unset or not a bool.
func (s Switches) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// String returns the value at key, or "" if unset or not a string.
func (s Switches) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Int returns the value at key, or 0.
func (s Switches) Int(key string) int {
	v, _ := s[key].(int)
	return v
}

// Strings returns the value at key, or nil.
func (s Switches) Strings(key string) []string {
	v, _ := s[key].([]string)
	return v
}
