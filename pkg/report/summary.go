package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Summary aggregates several runs.
type Summary struct {
	ID              string        `json:"id"`
	GeneratedAt     time.Time     `json:"generated_at"`
	Runs            []RunSummary  `json:"runs"`
	TotalRuns       int           `json:"total_runs"`
	PassedRuns      int           `json:"passed_runs"`
	FailedRuns      int           `json:"failed_runs"`
	TotalDuration   time.Duration `json:"total_duration"`
	AveragePassRate float64       `json:"average_pass_rate"`
}

// RunSummary summarises a single run.
type RunSummary struct {
	RunID            string        `json:"run_id"`
	Status           string        `json:"status"`
	Duration         time.Duration `json:"duration"`
	AssertionsPassed int           `json:"assertions_passed"`
	AssertionsTotal  int           `json:"assertions_total"`
}

// BuildSummary creates a summary from runs.
func BuildSummary(runs []*Run) *Summary {
	now := time.Now()
	summary := &Summary{
		ID:          fmt.Sprintf("summary_%s", now.Format("20060102_150405")),
		GeneratedAt: now,
		Runs:        make([]RunSummary, 0, len(runs)),
	}

	for _, r := range runs {
		summary.Runs = append(summary.Runs, RunSummary{
			RunID:            r.ID,
			Status:           r.Status(),
			Duration:         r.Duration,
			AssertionsPassed: r.PassedCount(),
			AssertionsTotal:  len(r.Results),
		})
		summary.TotalRuns++
		summary.TotalDuration += r.Duration

		if r.Status() == StatusPassed {
			summary.PassedRuns++
		} else {
			summary.FailedRuns++
		}
	}

	if summary.TotalRuns > 0 {
		summary.AveragePassRate =
			float64(summary.PassedRuns) / float64(summary.TotalRuns)
	}
	return summary
}

// SaveSummary writes the summary as JSON and Markdown files in
// outputDir and points latest_summary.{json,md} at them.
func SaveSummary(summary *Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(outputDir, fmt.Sprintf("summary_%s.json", ts))
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("write JSON summary: %w", err)
	}

	mdPath := filepath.Join(outputDir, fmt.Sprintf("summary_%s.md", ts))
	if err := os.WriteFile(mdPath, []byte(generateSummaryMarkdown(summary)), 0o644); err != nil {
		return fmt.Errorf("write Markdown summary: %w", err)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

func generateSummaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# clearcheck - Summary\n\n")
	fmt.Fprintf(&sb, "**Summary ID:** %s\n\n", summary.ID)
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", summary.GeneratedAt.Format(time.RFC3339))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Run | Status | Duration | Assertions |\n")
	sb.WriteString("|-----|--------|----------|------------|\n")
	for _, r := range summary.Runs {
		fmt.Fprintf(&sb, "| %s | %s | %v | %d/%d |\n",
			cell(r.RunID), strings.ToUpper(r.Status), r.Duration,
			r.AssertionsPassed, r.AssertionsTotal)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Total Runs | %d |\n", summary.TotalRuns)
	fmt.Fprintf(&sb, "| Passed | %d |\n", summary.PassedRuns)
	fmt.Fprintf(&sb, "| Failed | %d |\n", summary.FailedRuns)
	fmt.Fprintf(&sb, "| Pass Rate | %.0f%% |\n", summary.AveragePassRate*100)
	fmt.Fprintf(&sb, "| Total Duration | %v |\n", summary.TotalDuration)

	return sb.String()
}
