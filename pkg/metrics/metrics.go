// Package metrics records pass/fail counts for evaluated rules and
// assertions.
package metrics

// Recorder defines the interface for recording verdict metrics.
type Recorder interface {
	// RecordVerdict records one evaluation. source names the
	// rule or assertion type, kind is "leaf", "and" or "or".
	RecordVerdict(source, kind string, passed bool)
}

// NoopRecorder is a no-op implementation of Recorder used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordVerdict(_, _ string, _ bool) {}
