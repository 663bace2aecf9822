package assertion

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.clearcheck/pkg/logging"
	"digital.vasic.clearcheck/pkg/matcher"
	"digital.vasic.clearcheck/pkg/metrics"
	"digital.vasic.clearcheck/pkg/strmatch"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]+$`)

func TestNewEngine_HasBuiltins(t *testing.T) {
	e := NewEngine()

	types := e.Types()
	assert.Contains(t, types, "begin_with")
	assert.Contains(t, types, "have_length_in_range")
	assert.IsIncreasing(t, types)
	assert.True(t, e.HasFactory("match"))
	assert.False(t, e.HasFactory("nonexistent"))
}

func TestDefaultEngine_Register(t *testing.T) {
	e := NewEngine()

	err := e.Register("be_hex", func(_ Definition) (matcher.Matcher[string], error) {
		return strmatch.Match(hexPattern), nil
	})
	require.NoError(t, err)
	assert.True(t, e.HasFactory("be_hex"))

	err = e.Register("be_hex", nil)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	err = e.Register("contain", nil)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	r := e.Evaluate(Definition{Type: "be_hex"}, "c0ffee")
	assert.True(t, r.Passed)
}

func TestDefaultEngine_BuildUnknown(t *testing.T) {
	_, err := NewEngine().Build(Definition{Type: "nonexistent"})
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestDefaultEngine_Evaluate(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{Type: "begin_with", Target: "name", Value: "go"}, "golang")
	assert.True(t, r.Passed)
	assert.Equal(t, "begin_with", r.Type)
	assert.Equal(t, "name", r.Target)
	assert.Equal(t, "go", r.Expected)
	assert.Equal(t, "golang", r.Actual)
	assert.Equal(t, `"golang" should begin with "go"`, r.Message)
	assert.Equal(t, `"golang" should not begin with "go"`, r.NegatedMessage)

	r = e.Evaluate(Definition{Type: "begin_with", Value: "go", Negate: true}, "golang")
	assert.False(t, r.Passed)
	assert.True(t, r.Negated)
	assert.Equal(t, `"golang" should not begin with "go"`, r.Message)
}

func TestDefaultEngine_EvaluateBuildError(t *testing.T) {
	r := NewEngine().Evaluate(Definition{Type: "nonexistent"}, "x")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "unknown assertion type")

	r = NewEngine().Evaluate(Definition{Type: "have_length", Value: "x", Negate: true}, "x")
	assert.False(t, r.Passed, "a negated definition that cannot be built still fails")
	assert.Contains(t, r.Message, "invalid assertion value")
}

func TestDefaultEngine_EvaluateCustomMessage(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type: "have_at_least_length", Value: 10, Message: "password too short",
	}, "short")
	assert.False(t, r.Passed)
	assert.Equal(t, "password too short", r.Message)

	r = e.Evaluate(Definition{
		Type: "contain", Value: "pass", Negate: true, Message: "must not mention pass",
	}, "password")
	assert.False(t, r.Passed)
	assert.Equal(t, "must not mention pass", r.Message)
}

func TestDefaultEngine_EvaluateAll(t *testing.T) {
	e := NewEngine()

	defs := []Definition{
		{Type: "be_numeric", Target: "port"},
		{Type: "contain", Target: "host", Value: "."},
		{Type: "be_empty", Target: "missing"},
	}
	values := map[string]string{"port": "8080", "host": "localhost"}

	results := e.EvaluateAll(defs, values)
	require.Len(t, results, 3)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.False(t, results[2].Passed)
	assert.Equal(t, "target not found: missing", results[2].Message)
}

func TestDefaultEngine_EvaluateComposite(t *testing.T) {
	e := NewEngine()
	defs := ParseDefinitions([]string{
		"begin_with:go",
		"end_with:select",
		"have_at_least_length:10",
	})

	r := e.EvaluateComposite(matcher.KindAnd, defs, "goselect")
	assert.False(t, r.Passed)
	assert.Equal(t, "all_pass", r.Type)
	assert.Equal(t, 3, r.Expected)
	assert.Equal(t, `"goselect" should have at least length 10`, r.Message)

	r = e.EvaluateComposite(matcher.KindOr, defs, "goselect")
	assert.True(t, r.Passed)
	assert.Equal(t, "any_pass", r.Type)
	assert.Equal(t, 3, strings.Count(r.Message, "\n")+1)

	r = e.EvaluateComposite(matcher.KindAnd, nil, "goselect")
	assert.False(t, r.Passed)
	assert.Equal(t, ErrEmptyComposite.Error(), r.Message)
}

func TestDefaultEngine_RecordsMetricsAndVerdicts(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.NewInMemoryRecorder()
	e := NewEngine(
		WithLogger(logging.NewJSONLoggerTo(&buf, logging.LevelInfo)),
		WithMetrics(rec),
	)

	e.Evaluate(Definition{Type: "contain", Value: "a"}, "abc")
	e.Evaluate(Definition{Type: "contain", Value: "z"}, "abc")
	e.EvaluateComposite(matcher.KindOr, ParseDefinitions([]string{"be_empty"}), "abc")

	assert.Equal(t, 1, rec.Count("contain", true))
	assert.Equal(t, 1, rec.Count("contain", false))
	assert.Equal(t, 1, rec.Count("any_pass", false))
	assert.Equal(t, 3, rec.Total())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"passed":true`)
	assert.Contains(t, lines[1], `"passed":false`)
	assert.Contains(t, lines[1], `should contain`)
}

func TestDefaultEngine_EvaluateRule(t *testing.T) {
	rec := metrics.NewInMemoryRecorder()
	e := NewEngine(WithMetrics(rec))
	defs := ParseDefinitions([]string{"contain_a_digit", "have_at_least_length:10"})

	r := e.EvaluateRule("strong_password", "DB_PASSWORD", matcher.KindAnd, defs, "hunter2")
	assert.False(t, r.Passed)
	assert.Equal(t, "strong_password", r.Type)
	assert.Equal(t, "DB_PASSWORD", r.Target)
	assert.Equal(t, "hunter2", r.Actual)
	assert.Equal(t, 1, rec.Count("strong_password", false))

	r = e.EvaluateRule("", "HOST", matcher.KindOr, defs, "db-01.internal")
	assert.True(t, r.Passed)
	assert.Equal(t, "any_pass", r.Type)
	assert.Equal(t, "HOST", r.Target)

	r = e.EvaluateRule("broken", "HOST", matcher.KindAnd, nil, "x")
	assert.False(t, r.Passed)
	assert.Equal(t, "broken", r.Type)
	assert.Equal(t, "HOST", r.Target)
}

func TestDefaultEngine_RedactingLoggerMasksSecretTargets(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(WithLogger(
		logging.NewRedactingLogger(logging.NewJSONLoggerTo(&buf, logging.LevelInfo)),
	))
	secret := `hunter"2\secretvalue`

	r := e.EvaluateRule("db_password", "DB_PASSWORD", matcher.KindAnd,
		ParseDefinitions([]string{"begin_with:pw-"}), secret)
	require.False(t, r.Passed)
	assert.Contains(t, r.Message, "secretvalue", "results keep the raw message")

	e.Evaluate(Definition{Type: "begin_with", Value: "pw-", Target: "API_TOKEN"}, "tok-0123456789abc")
	e.Evaluate(Definition{Type: "contain_only_digits", Target: "PORT"}, "80a")

	out := buf.String()
	assert.NotContains(t, out, "secretvalue")
	assert.NotContains(t, out, "tok-0123456789abc")
	assert.Contains(t, out, `\"hunt************alue\" should begin with`)
	assert.Contains(t, out, `\"80a\" should only contain digits`)
}

func TestDefaultEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine()
	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				name := "custom_" + string(rune('a'+i))
				if err := e.Register(name, noArgFactory(strmatch.BeEmpty)); err != nil {
					errs <- err
				}
				return
			}
			if !e.Evaluate(Definition{Type: "contain", Value: "o"}, "go").Passed {
				errs <- errors.New("contain:o should pass on go")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.True(t, e.HasFactory("custom_a"))
}
