package interfaces

// Logger is a deliberately small, framework-agnostic logging interface.
// Implementations live outside internal packages so any logger can be
// swapped in without touching the pipeline code.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning. Expected external failures (lookup retries,
	// transient upstream statuses) belong here.
	Warn(msg string, fields ...Field)

	// Error logs an error. Reserved for unexpected internal failures.
	Error(msg string, fields ...Field)

	// With returns a child logger with persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value interface{}
}
