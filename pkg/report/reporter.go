// Package report renders assertion results as JSON and Markdown
// reports, run summaries, and an append-only history.
package report

import (
	"io"
	"time"

	"digital.vasic.clearcheck/pkg/assertion"
	"digital.vasic.clearcheck/pkg/env"
)

// Run statuses.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Reporter defines the interface for generating run reports.
type Reporter interface {
	// GenerateReport creates a report for a single run.
	GenerateReport(run *Run) ([]byte, error)

	// GenerateSummary creates a summary of several runs.
	GenerateSummary(runs []*Run) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, run *Run) error
}

// Run is one batch of evaluations, such as a rule bank checked
// against a set of target values.
type Run struct {
	ID        string             `json:"id"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Duration  time.Duration      `json:"duration"`
	Results   []assertion.Result `json:"results"`
}

// NewRun creates a Run that started at start and ends now.
func NewRun(id string, start time.Time, results []assertion.Result) *Run {
	end := time.Now()
	return &Run{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Results:   results,
	}
}

// PassedCount returns the number of passed results.
func (r *Run) PassedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Status is StatusPassed when every result passed.
func (r *Run) Status() string {
	if r.PassedCount() == len(r.Results) {
		return StatusPassed
	}
	return StatusFailed
}

// Option configures a reporter.
type Option func(*options)

type options struct {
	isSecret func(target string) bool
}

// WithRedaction masks the actual value of every result whose
// target isSecret accepts, in the value field and in messages.
func WithRedaction(isSecret func(target string) bool) Option {
	return func(o *options) {
		o.isSecret = isSecret
	}
}

// WithSecretNames redacts targets that look like credentials.
func WithSecretNames() Option {
	return WithRedaction(env.IsSecretName)
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// redact returns run unchanged, or a copy with secret values
// masked.
func (o options) redact(run *Run) *Run {
	if o.isSecret == nil {
		return run
	}
	out := *run
	out.Results = make([]assertion.Result, len(run.Results))
	for i, res := range run.Results {
		if o.isSecret(res.Target) && res.Actual != "" {
			res.Message = env.Redact(res.Message, res.Actual)
			res.NegatedMessage = env.Redact(res.NegatedMessage, res.Actual)
			res.Actual = env.Mask(res.Actual)
		}
		out.Results[i] = res
	}
	return &out
}

func (o options) redactAll(runs []*Run) []*Run {
	out := make([]*Run, len(runs))
	for i, r := range runs {
		out[i] = o.redact(r)
	}
	return out
}
