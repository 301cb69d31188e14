package engine

import "time"

// Clock caps the loop at a fixed frame rate.
type Clock struct {
	frame time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a clock for fps iterations per second.
func NewClock(fps int) *Clock {
	if fps <= 0 {
		fps = 30
	}
	return &Clock{
		frame: time.Second / time.Duration(fps),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Frame returns the minimum frame duration.
func (c *Clock) Frame() time.Duration { return c.frame }

// Tick blocks until at least one frame has passed since the previous tick
// and returns the elapsed time, never less than one frame.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	elapsed := now.Sub(c.last)
	if elapsed < c.frame {
		c.sleep(c.frame - elapsed)
		now = c.now()
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return max(elapsed, c.frame)
}
