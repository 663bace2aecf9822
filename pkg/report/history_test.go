package report

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	require.NoError(t, AppendToHistory(path, makeTestRun()))
	require.NoError(t, AppendToHistory(path, makePassingRun("ok")))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []HistoricalEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var e HistoricalEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, entries, 2)

	assert.Equal(t, "env-check", entries[0].RunID)
	assert.Equal(t, StatusFailed, entries[0].Status)
	assert.Equal(t, "5s", entries[0].Duration)
	assert.Equal(t, 1, entries[0].AssertionsPassed)
	assert.Equal(t, 2, entries[0].AssertionsTotal)
	assert.Equal(t, []string{"db_password"}, entries[0].Failed)

	assert.Equal(t, StatusPassed, entries[1].Status)
	assert.Empty(t, entries[1].Failed)
}

func TestAppendToHistory_BadPath(t *testing.T) {
	err := AppendToHistory(filepath.Join(t.TempDir(), "missing", "h.jsonl"), makeTestRun())
	assert.ErrorContains(t, err, "open history file")
}
