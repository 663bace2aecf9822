// Package logging provides structured logging for clearcheck rule
// evaluation with JSON, console, and multi-destination output.
package logging

import "strings"

// Logger defines the interface for structured assertion logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogVerdict records the outcome of one matcher
	// evaluation.
	LogVerdict(verdict VerdictLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// VerdictLog captures a single rule or assertion evaluation.
type VerdictLog struct {
	Timestamp string `json:"timestamp"`
	Rule      string `json:"rule,omitempty"`
	Type      string `json:"type"`
	Target    string `json:"target,omitempty"`
	Negated   bool   `json:"negated,omitempty"`
	Passed    bool   `json:"passed"`

	// Message is the failure explanation that applies to
	// the evaluated form; empty when the evaluation passed.
	Message string `json:"message,omitempty"`

	// Actual is the evaluated value. It is never written out;
	// decorators use it to mask secrets in Message.
	Actual string `json:"-"`
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name into a
// LogLevel. Unknown names map to LevelInfo.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
