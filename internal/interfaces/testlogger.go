package interfaces

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// TestLogEntry is one captured log call.
type TestLogEntry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// TestLogger implements Logger for tests. Every entry is recorded so a
// test can assert on what a component logged; with verbose set it also
// echoes JSON lines to stdout in the production logger's shape. Children
// returned by With share the parent's recording.
type TestLogger struct {
	verbose    bool
	persistent []Field
	sink       *testLogSink
}

type testLogSink struct {
	mu      sync.Mutex
	entries []TestLogEntry
}

// NewTestLogger creates a new test logger.
func NewTestLogger(verbose bool) *TestLogger {
	return &TestLogger{verbose: verbose, sink: &testLogSink{}}
}

// Entries returns a copy of everything logged so far, in order.
func (tl *TestLogger) Entries() []TestLogEntry {
	tl.sink.mu.Lock()
	defer tl.sink.mu.Unlock()
	return append([]TestLogEntry{}, tl.sink.entries...)
}

func (tl *TestLogger) record(level, msg string, fields []Field) {
	m := make(map[string]any)
	for _, f := range tl.persistent {
		m[f.Key] = f.Value
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}

	tl.sink.mu.Lock()
	tl.sink.entries = append(tl.sink.entries, TestLogEntry{Level: level, Msg: msg, Fields: m})
	tl.sink.mu.Unlock()

	if tl.verbose {
		line, err := json.Marshal(map[string]any{"level": level, "msg": msg, "fields": m})
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s %s %v\n", level, msg, m)
			return
		}
		fmt.Fprintln(os.Stdout, string(line))
	}
}

func (tl *TestLogger) Debug(msg string, fields ...Field) {
	tl.record("debug", msg, fields)
}

func (tl *TestLogger) Info(msg string, fields ...Field) {
	tl.record("info", msg, fields)
}

func (tl *TestLogger) Warn(msg string, fields ...Field) {
	tl.record("warn", msg, fields)
}

func (tl *TestLogger) Error(msg string, fields ...Field) {
	tl.record("error", msg, fields)
}

func (tl *TestLogger) With(fields ...Field) Logger {
	child := &TestLogger{
		verbose: tl.verbose,
		sink:    tl.sink,
	}
	child.persistent = append(child.persistent, tl.persistent...)
	child.persistent = append(child.persistent, fields...)
	return child
}
