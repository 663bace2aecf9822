package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter generates Markdown reports from runs.
type MarkdownReporter struct {
	opts options
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(opts ...Option) *MarkdownReporter {
	return &MarkdownReporter{opts: newOptions(opts)}
}

// GenerateReport creates a Markdown report for a single run.
func (r *MarkdownReporter) GenerateReport(run *Run) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, run); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes a Markdown report to the specified writer.
// Failed results are listed with their messages.
func (r *MarkdownReporter) WriteReport(w io.Writer, run *Run) error {
	run = r.opts.redact(run)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Run Report: %s\n\n", run.ID)
	fmt.Fprintf(&sb, "**Status:** %s\n\n", strings.ToUpper(run.Status()))
	fmt.Fprintf(&sb, "**Finished:** %s\n\n", run.EndTime.Format(time.RFC3339))
	fmt.Fprintf(&sb, "**Duration:** %v\n\n", run.Duration)

	sb.WriteString("| Assertion | Target | Result |\n")
	sb.WriteString("|-----------|--------|--------|\n")
	for _, res := range run.Results {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			cell(res.Type), cell(res.Target), passFail(res.Passed))
	}

	failures := 0
	for _, res := range run.Results {
		if res.Passed {
			continue
		}
		if failures == 0 {
			sb.WriteString("\n## Failures\n")
		}
		failures++
		fmt.Fprintf(&sb, "\n### %s\n\n```\n%s\n```\n", res.Type, res.Message)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// GenerateSummary creates a Markdown summary of runs.
func (r *MarkdownReporter) GenerateSummary(runs []*Run) ([]byte, error) {
	return []byte(generateSummaryMarkdown(BuildSummary(runs))), nil
}

func passFail(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// cell escapes the characters that break a Markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
