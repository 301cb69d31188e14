// Package logging configures the process logger: charmbracelet/log records
// rendered as "name - LEVEL - file / function / line - message" lines, sent
// to the console at every level and to a per-run file at error and above.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Name is the logger name written at the start of every line.
const Name = "clangen"

// fileLayout formats the per-run log file name.
const fileLayout = "clangen_20060102_150405.log"

// Options configures Setup.
type Options struct {
	Dir     string    // directory for the per-run file; empty disables it
	Console io.Writer // nil disables console output
	Level   log.Level // minimum level accepted by the logger
	Now     func() time.Time
}

// Setup builds the logger and opens the log file. The returned closer
// flushes and closes the file and must be called on exit.
func Setup(opts Options) (*log.Logger, io.Closer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sink := &Sink{Console: opts.Console, FileLevel: log.ErrorLevel}
	var closer io.Closer = nopCloser{}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory %s: %w", opts.Dir, err)
		}
		path := filepath.Join(opts.Dir, opts.Now().Format(fileLayout))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file %s: %w", path, err)
		}
		sink.File = f
		closer = f
	}

	return New(sink, opts.Level), closer, nil
}

// New returns a logger that writes JSON records into w. Pass a *Sink to get
// the clangen line format.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Name,
		Level:           level,
		ReportCaller:    true,
		CallerFormatter: CallerFormatter,
		Formatter:       log.JSONFormatter,
	})
}

// CallerFormatter renders a caller as "file / function / line".
func CallerFormatter(file string, line int, fn string) string {
	if i := strings.LastIndex(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return fmt.Sprintf("%s / %s / %d", filepath.Base(file), fn, line)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
