package logging

import "digital.vasic.clearcheck/pkg/env"

// RedactingLogger is a decorator that masks secret values before
// passing messages, string fields and verdicts to the inner logger.
// Verdicts for targets that look like credentials have their
// evaluated value masked wherever the message quotes it.
type RedactingLogger struct {
	inner    Logger
	secrets  []string
	isSecret func(target string) bool
}

// NewRedactingLogger creates a logger that masks the given secrets
// everywhere, and the evaluated value of verdicts whose target
// env.IsSecretName flags.
func NewRedactingLogger(inner Logger, secrets ...string) *RedactingLogger {
	return &RedactingLogger{
		inner:    inner,
		secrets:  secrets,
		isSecret: env.IsSecretName,
	}
}

func (r *RedactingLogger) redact(msg string) string {
	for _, secret := range r.secrets {
		msg = env.Redact(msg, secret)
	}
	return msg
}

func (r *RedactingLogger) redactFields(fields []Field) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		if str, ok := f.Value.(string); ok {
			f.Value = r.redact(str)
		}
		result[i] = f
	}
	return result
}

// Info logs a redacted informational message.
func (r *RedactingLogger) Info(msg string, fields ...Field) {
	r.inner.Info(r.redact(msg), r.redactFields(fields)...)
}

// Warn logs a redacted warning message.
func (r *RedactingLogger) Warn(msg string, fields ...Field) {
	r.inner.Warn(r.redact(msg), r.redactFields(fields)...)
}

// Error logs a redacted error message.
func (r *RedactingLogger) Error(msg string, fields ...Field) {
	r.inner.Error(r.redact(msg), r.redactFields(fields)...)
}

// Debug logs a redacted debug message.
func (r *RedactingLogger) Debug(msg string, fields ...Field) {
	r.inner.Debug(r.redact(msg), r.redactFields(fields)...)
}

// WithFields returns a RedactingLogger wrapping a new inner
// logger with the given fields applied.
func (r *RedactingLogger) WithFields(fields ...Field) Logger {
	return &RedactingLogger{
		inner:    r.inner.WithFields(r.redactFields(fields)...),
		secrets:  r.secrets,
		isSecret: r.isSecret,
	}
}

// LogVerdict masks the verdict message before logging it.
func (r *RedactingLogger) LogVerdict(verdict VerdictLog) {
	if verdict.Actual != "" && r.isSecret(verdict.Target) {
		verdict.Message = env.Redact(verdict.Message, verdict.Actual)
		verdict.Actual = env.Mask(verdict.Actual)
	}
	verdict.Message = r.redact(verdict.Message)
	r.inner.LogVerdict(verdict)
}

// Close closes the inner logger.
func (r *RedactingLogger) Close() error {
	return r.inner.Close()
}
