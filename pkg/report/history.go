package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// HistoricalEntry is one run in the history log.
type HistoricalEntry struct {
	Timestamp        time.Time `json:"timestamp"`
	RunID            string    `json:"run_id"`
	Status           string    `json:"status"`
	Duration         string    `json:"duration"`
	AssertionsPassed int       `json:"assertions_passed"`
	AssertionsTotal  int       `json:"assertions_total"`
	Failed           []string  `json:"failed,omitempty"`
}

// AppendToHistory adds an entry for run to the history log at
// historyPath. Each entry is a single JSON line.
func AppendToHistory(historyPath string, run *Run) error {
	entry := HistoricalEntry{
		Timestamp:        run.EndTime,
		RunID:            run.ID,
		Status:           run.Status(),
		Duration:         run.Duration.String(),
		AssertionsPassed: run.PassedCount(),
		AssertionsTotal:  len(run.Results),
	}
	for _, res := range run.Results {
		if !res.Passed {
			entry.Failed = append(entry.Failed, res.Type)
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	file, err := os.OpenFile(historyPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
