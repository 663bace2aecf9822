package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the main log file. Empty means stdout.
	OutputPath string

	// VerdictLog, when set, receives one JSON line per
	// LogVerdict call.
	VerdictLog string

	Level   LogLevel
	Verbose bool
	Fields  map[string]any
}

// jsonSink is the state shared by a JSONLogger and the loggers
// derived from it with WithFields.
type jsonSink struct {
	mu         sync.Mutex
	output     io.Writer
	verdictLog io.Writer
	closed     bool
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	sink    *jsonSink
	level   LogLevel
	fields  map[string]any
	verbose bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		sink:    &jsonSink{output: os.Stdout},
		level:   config.Level,
		verbose: config.Verbose,
		fields:  maps.Clone(config.Fields),
	}
	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		file, err := openAppend(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.sink.output = file
	}

	if config.VerdictLog != "" {
		file, err := openAppend(config.VerdictLog)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("failed to open verdict log: %w", err)
		}
		logger.sink.verdictLog = file
	}

	return logger, nil
}

// NewJSONLoggerTo creates a JSON logger writing entries to w.
// Verdicts are written to the same writer.
func NewJSONLoggerTo(w io.Writer, level LogLevel) *JSONLogger {
	return &JSONLogger{
		sink:    &jsonSink{output: w, verdictLog: w},
		level:   level,
		verbose: level == LevelDebug,
		fields:  make(map[string]any),
	}
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func (l *JSONLogger) log(level LogLevel, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    maps.Clone(l.fields),
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.sink.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields that shares this logger's outputs.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := maps.Clone(l.fields)
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		sink:    l.sink,
		level:   l.level,
		verbose: l.verbose,
		fields:  newFields,
	}
}

// LogVerdict writes the verdict to the dedicated verdict log.
// Without one it is a no-op.
func (l *JSONLogger) LogVerdict(verdict VerdictLog) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.closed || l.sink.verdictLog == nil {
		return
	}
	if verdict.Timestamp == "" {
		verdict.Timestamp = time.Now().Format(time.RFC3339Nano)
	}

	data, err := jsonMarshal(verdict)
	if err != nil {
		return
	}

	fmt.Fprintln(l.sink.verdictLog, string(data))
}

// Close flushes and closes all underlying files. Stdout is never
// closed.
func (l *JSONLogger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.closed {
		return nil
	}
	l.sink.closed = true

	var errs []error
	seen := map[io.Writer]bool{os.Stdout: true}
	for _, w := range []io.Writer{l.sink.output, l.sink.verdictLog} {
		if w == nil || seen[w] {
			continue
		}
		seen[w] = true
		if closer, ok := w.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// SetupLogging creates a JSON logger for rule evaluation in the
// given logs directory.
func SetupLogging(logsDir string, verbose bool) (*JSONLogger, error) {
	config := LoggerConfig{
		OutputPath: filepath.Join(logsDir, "clearcheck.log"),
		VerdictLog: filepath.Join(logsDir, "verdicts.log"),
		Level:      LevelInfo,
		Verbose:    verbose,
	}
	if verbose {
		config.Level = LevelDebug
	}
	return NewJSONLogger(config)
}
