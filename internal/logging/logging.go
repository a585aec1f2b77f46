package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"trustlens/internal/interfaces"
)

// StdoutLogger is a tiny, structured logger. It implements
// interfaces.Logger and prints JSON lines to stdout.
type StdoutLogger struct {
	component  string
	persistent []interfaces.Field
}

// NewStdoutLogger creates a new StdoutLogger. component is optional and
// is included on every entry.
func NewStdoutLogger(component string) *StdoutLogger {
	return &StdoutLogger{component: component}
}

func (s *StdoutLogger) log(level string, msg string, fields ...interfaces.Field) {
	type outEntry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}
	m := make(map[string]any)
	for _, f := range s.persistent {
		m[f.Key] = f.Value
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	entry := outEntry{
		Level:     level,
		Msg:       msg,
		Component: s.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}
	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback simple formatting to stdout if JSON marshal fails
		fmt.Fprintf(os.Stdout, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(os.Stdout, string(enc))
}

func (s *StdoutLogger) Debug(msg string, fields ...interfaces.Field) {
	s.log("debug", msg, fields...)
}

func (s *StdoutLogger) Info(msg string, fields ...interfaces.Field) {
	s.log("info", msg, fields...)
}

func (s *StdoutLogger) Warn(msg string, fields ...interfaces.Field) {
	s.log("warn", msg, fields...)
}

func (s *StdoutLogger) Error(msg string, fields ...interfaces.Field) {
	s.log("error", msg, fields...)
}

// With returns a child logger carrying the given fields on every entry.
// A "component" field replaces the component name instead of nesting.
func (s *StdoutLogger) With(fields ...interfaces.Field) interfaces.Logger {
	child := &StdoutLogger{component: s.component}
	child.persistent = append(child.persistent, s.persistent...)
	for _, f := range fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
				continue
			}
		}
		child.persistent = append(child.persistent, f)
	}
	return child
}
