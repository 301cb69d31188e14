package core

// Event is a single input event drained by the frame loop.
// The terminal backend delivers its own message types (key presses, mouse
// presses, resizes) unchanged; QuitEvent is the one event core defines itself.
type Event any

// QuitEvent asks the game to close, like a window-close button.
// The frame loop decides whether to shut down or to ask about unsaved changes.
type QuitEvent struct{}
