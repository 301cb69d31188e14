package logging

import (
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/log"
)

// Recover is the crash hook. Deferred at the top of a goroutine, it logs a
// panic at CRITICAL with the stack, runs cleanup, and re-panics so the
// process terminates with a non-zero status.
func Recover(logger *log.Logger, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}
	logger.Log(log.FatalLevel, "Uncaught exception", "panic", fmt.Sprint(r), StackKey, string(debug.Stack()))
	if cleanup != nil {
		cleanup()
	}
	panic(r)
}

// LogCrash logs an error that ended the frame loop, at CRITICAL with the stack.
func LogCrash(logger *log.Logger, err error) {
	logger.Log(log.FatalLevel, "Uncaught exception", "error", err, StackKey, string(debug.Stack()))
}
