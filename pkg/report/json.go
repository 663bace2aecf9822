package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONReporter generates JSON reports from runs.
type JSONReporter struct {
	pretty bool
	opts   options
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool, opts ...Option) *JSONReporter {
	return &JSONReporter{pretty: pretty, opts: newOptions(opts)}
}

// jsonRun adds the derived fields to a Run.
type jsonRun struct {
	*Run
	Status string `json:"status"`
	Passed int    `json:"passed"`
	Total  int    `json:"total"`
}

// GenerateReport creates a JSON report for a single run.
func (r *JSONReporter) GenerateReport(run *Run) ([]byte, error) {
	run = r.opts.redact(run)
	return r.marshal(jsonRun{
		Run:    run,
		Status: run.Status(),
		Passed: run.PassedCount(),
		Total:  len(run.Results),
	})
}

// jsonSummary is the JSON structure for a summary of runs.
type jsonSummary struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	TotalRuns     int           `json:"total_runs"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	TotalDuration time.Duration `json:"total_duration"`
	Runs          []*Run        `json:"runs"`
}

// GenerateSummary creates a JSON summary of runs.
func (r *JSONReporter) GenerateSummary(runs []*Run) ([]byte, error) {
	summary := jsonSummary{
		GeneratedAt: time.Now(),
		TotalRuns:   len(runs),
		Runs:        r.opts.redactAll(runs),
	}
	for _, run := range runs {
		if run.Status() == StatusPassed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.TotalDuration += run.Duration
	}
	return r.marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(w io.Writer, run *Run) error {
	data, err := r.GenerateReport(run)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (r *JSONReporter) marshal(v any) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
