package metrics

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
)

// metricName is the counter family exposed by WriteText.
const metricName = "clearcheck_verdicts_total"

type counterKey struct {
	source string
	kind   string
	status string
}

// InMemoryRecorder implements Recorder with mutex-guarded
// counters. Exposition in the Prometheus text format is done by
// WriteText; scraping is left to the host application.
type InMemoryRecorder struct {
	mu       sync.Mutex
	counters map[counterKey]int
}

// NewInMemoryRecorder creates an empty InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{counters: make(map[counterKey]int)}
}

func (r *InMemoryRecorder) RecordVerdict(source, kind string, passed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[counterKey{source, kind, status(passed)}]++
}

// Count returns the number of recorded verdicts for source with
// the given outcome.
func (r *InMemoryRecorder) Count(source string, passed bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k, v := range r.counters {
		if k.source == source && k.status == status(passed) {
			n += v
		}
	}
	return n
}

// Total returns the number of recorded verdicts.
func (r *InMemoryRecorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.counters {
		n += v
	}
	return n
}

// WriteText writes every counter in the Prometheus text
// exposition format, sorted by labels.
func (r *InMemoryRecorder) WriteText(w io.Writer) error {
	r.mu.Lock()
	snapshot := maps.Clone(r.counters)
	r.mu.Unlock()

	keys := slices.SortedFunc(maps.Keys(snapshot), compareKeys)

	if _, err := fmt.Fprintf(w,
		"# HELP %s Matcher verdicts by source, kind and status.\n"+
			"# TYPE %s counter\n",
		metricName, metricName,
	); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w,
			"%s{source=%q,kind=%q,status=%q} %d\n",
			metricName, k.source, k.kind, k.status, snapshot[k],
		); err != nil {
			return err
		}
	}
	return nil
}

func compareKeys(a, b counterKey) int {
	if c := cmp.Compare(a.source, b.source); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.status, b.status)
}

func status(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
