package presence

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

const commandBufferSize = 16

// Reporter owns a presence Client on a dedicated goroutine and feeds it
// commands from the game loop without blocking.
type Reporter struct {
	client Client
	logger *log.Logger

	mu    sync.Mutex
	queue []Command
	wake  chan struct{}
	done  chan struct{}

	startOnce sync.Once
	started   atomic.Bool
	running   atomic.Bool

	// owned by the reporter goroutine
	connected bool
	last      Activity
}

// NewReporter creates a reporter. Call Start to launch its goroutine.
func NewReporter(c Client, logger *log.Logger) *Reporter {
	if c == nil {
		c = NopClient{}
	}
	return &Reporter{
		client: c,
		logger: logger.WithPrefix(logger.GetPrefix() + ".presence"),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start launches the reporter goroutine. Safe to call multiple times.
func (r *Reporter) Start() {
	r.startOnce.Do(func() {
		r.started.Store(true)
		r.running.Store(true)
		go r.run()
	})
}

// Connect asks the goroutine to log in to the presence service.
func (r *Reporter) Connect() {
	r.send(StartCmd{})
}

// Update publishes a new activity.
func (r *Reporter) Update(a Activity) {
	r.send(UpdateCmd{Activity: a})
}

// Close publishes the cleared state and stops the goroutine.
func (r *Reporter) Close() {
	r.send(CloseCmd{})
}

// Running reports whether the goroutine is still alive.
func (r *Reporter) Running() bool {
	return r.running.Load()
}

// Done is closed when the goroutine exits.
func (r *Reporter) Done() <-chan struct{} {
	return r.done
}

// Join waits up to timeout for the goroutine to exit and reports whether it
// did. A reporter that was never started counts as joined.
func (r *Reporter) Join(timeout time.Duration) bool {
	if !r.started.Load() {
		return true
	}
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		r.logger.Warn("reporter did not stop in time", "timeout", timeout)
		return false
	}
}

// send queues a command without blocking. When commandBufferSize commands
// are waiting, a new update replaces the oldest queued update; start and
// close are always kept.
func (r *Reporter) send(cmd Command) {
	_, update := cmd.(UpdateCmd)
	r.mu.Lock()
	if update && len(r.queue) >= commandBufferSize {
		r.dropOldestUpdate()
	}
	if !update || len(r.queue) < commandBufferSize {
		r.queue = append(r.queue, cmd)
	}
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// dropOldestUpdate removes the first UpdateCmd in the queue. r.mu is held.
func (r *Reporter) dropOldestUpdate() {
	for i, c := range r.queue {
		if _, ok := c.(UpdateCmd); ok {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return
		}
	}
}

// take empties the queue.
func (r *Reporter) take() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := r.queue
	r.queue = nil
	return cmds
}

func (r *Reporter) run() {
	defer close(r.done)
	defer r.running.Store(false)
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("reporter crashed", "panic", p)
		}
	}()

	for range r.wake {
		for _, cmd := range r.take() {
			switch c := cmd.(type) {
			case StartCmd:
				r.handleStart()
			case UpdateCmd:
				r.handleUpdate(c.Activity)
			case CloseCmd:
				r.handleClose()
				return
			}
		}
	}
}

// pending returns the number of queued commands.
func (r *Reporter) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

func (r *Reporter) handleStart() {
	if r.connected {
		return
	}
	if err := r.client.Login(); err != nil {
		r.logger.Warn("cannot connect", "error", err)
		return
	}
	r.connected = true
	r.logger.Debug("connected")
}

func (r *Reporter) handleUpdate(a Activity) {
	if !r.connected {
		return
	}
	if a == r.last {
		return
	}
	if err := r.client.SetActivity(a); err != nil {
		r.logger.Warn("cannot set activity", "error", err)
		return
	}
	r.last = a
}

func (r *Reporter) handleClose() {
	if !r.connected {
		return
	}
	if err := r.client.SetActivity(Activity{}); err != nil {
		r.logger.Warn("cannot clear activity", "error", err)
	}
	r.client.Logout()
	r.connected = false
}
