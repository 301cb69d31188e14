package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// StackKey is the keyval name whose value is printed below the log line.
const StackKey = "stack"

// Sink decodes JSON records from a charm logger and writes them as
// formatted lines to the console and, above FileLevel, to the file.
type Sink struct {
	Console   io.Writer
	File      io.Writer
	FileLevel log.Level

	mu sync.Mutex
}

type record struct {
	level  log.Level
	line   string
	stack  string
	parsed bool
}

// Write implements io.Writer. The logger issues one Write per record.
func (s *Sink) Write(p []byte) (int, error) {
	rec := parseRecord(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := rec.line + "\n"
	if rec.stack != "" {
		out += strings.TrimRight(rec.stack, "\n") + "\n"
	}

	if s.Console != nil {
		if _, err := io.WriteString(s.Console, out); err != nil {
			return 0, err
		}
	}
	if s.File != nil && (!rec.parsed || rec.level >= s.FileLevel) {
		if _, err := io.WriteString(s.File, out); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// parseRecord renders one JSON record. Unparseable input is passed through.
func parseRecord(p []byte) record {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return record{line: strings.TrimRight(string(p), "\n"), level: log.ErrorLevel}
	}

	var (
		name, caller, msg, lvl string
		extras                 []string
		stack                  string
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			break
		}
		switch key {
		case log.PrefixKey:
			name = rawString(raw)
		case log.LevelKey:
			lvl = rawString(raw)
		case log.CallerKey:
			caller = rawString(raw)
		case log.MessageKey:
			msg = rawString(raw)
		case log.TimestampKey:
		case StackKey:
			stack = rawString(raw)
		default:
			extras = append(extras, fmt.Sprintf("%s=%s", key, rawString(raw)))
		}
	}

	level, err := log.ParseLevel(lvl)
	if err != nil {
		level = log.InfoLevel
	}
	if name == "" {
		name = Name
	}

	line := fmt.Sprintf("%s - %s - %s - %s", name, LevelName(level), caller, msg)
	if len(extras) > 0 {
		line += " " + strings.Join(extras, " ")
	}
	return record{level: level, line: line, stack: stack, parsed: true}
}

// rawString unquotes JSON strings and returns other values verbatim.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// LevelName maps charm levels onto the names used in clangen log lines.
func LevelName(l log.Level) string {
	switch {
	case l >= log.FatalLevel:
		return "CRITICAL"
	case l >= log.ErrorLevel:
		return "ERROR"
	case l >= log.WarnLevel:
		return "WARNING"
	case l >= log.InfoLevel:
		return "INFO"
	default:
		return "DEBUG"
	}
}
