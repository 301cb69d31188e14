package engine

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultJoinTimeout bounds the wait for the presence goroutine.
const DefaultJoinTimeout = time.Second

// Shutdown runs the quit sequence once: close presence, tear down the
// display, wait briefly for the presence goroutine, then exit with status 0.
type Shutdown struct {
	Presence    Presence
	Display     Display
	JoinTimeout time.Duration
	Exit        func(code int)
	Logger      *log.Logger

	once sync.Once
}

// Run executes the sequence and exits. Later calls do nothing.
func (s *Shutdown) Run() {
	s.run(true)
}

// Stop executes the sequence without exiting, for a loop that ended because
// its context was cancelled or it failed.
func (s *Shutdown) Stop() {
	s.run(false)
}

func (s *Shutdown) run(exit bool) {
	s.once.Do(func() {
		timeout := s.JoinTimeout
		if timeout <= 0 {
			timeout = DefaultJoinTimeout
		}

		if s.Presence != nil {
			s.Presence.Close()
		}
		if s.Display != nil {
			s.Display.Teardown()
		}
		if s.Presence != nil && s.Presence.Running() {
			if !s.Presence.Join(timeout) && s.Logger != nil {
				s.Logger.Warn("presence reporter still running at exit")
			}
		}
		if s.Logger != nil {
			s.Logger.Debug("shutdown complete")
		}
		if exit && s.Exit != nil {
			s.Exit(0)
		}
	})
}
