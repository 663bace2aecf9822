package bank

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.clearcheck/pkg/assertion"
	"digital.vasic.clearcheck/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBank_LoadFileYAML(t *testing.T) {
	var buf bytes.Buffer
	b := New(logging.NewJSONLoggerTo(&buf, logging.LevelInfo))

	require.NoError(t, b.LoadFile("testdata/password.yaml"))
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, []string{"testdata/password.yaml"}, b.Sources())
	assert.Contains(t, buf.String(), "rule bank loaded")

	r, ok := b.Get("pin")
	require.True(t, ok)
	defs := r.Defs()
	require.Len(t, defs, 2)
	assert.Equal(t, "have_length_in_range", defs[1].Type)
	assert.Equal(t, []any{4, 6}, defs[1].Values)
}

func TestBank_LoadFileJSON(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.LoadFile("testdata/names.json"))

	r, ok := b.Get("goish")
	require.True(t, ok)
	assert.Equal(t, "or", r.Combine)
	assert.Len(t, r.Defs(), 2)
}

func TestBank_LoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	b := New(nil)

	err := b.LoadFile(filepath.Join(dir, "absent.yaml"))
	assert.ErrorContains(t, err, "read bank file")

	bad := writeFile(t, dir, "bad.json", "{not json")
	assert.ErrorContains(t, b.LoadFile(bad), "parse bank file")

	combine := writeFile(t, dir, "combine.yaml", `
version: "1"
rules:
  - id: r
    combine: xor
    assertions: [be_empty]
`)
	assert.ErrorIs(t, b.LoadFile(combine), ErrInvalidRule)

	empty := writeFile(t, dir, "empty.yaml", `
version: "1"
rules:
  - id: r
`)
	assert.ErrorIs(t, b.LoadFile(empty), ErrInvalidRule)
	assert.Zero(t, b.Count())
}

func TestBank_DuplicateRulesAreAtomic(t *testing.T) {
	dir := t.TempDir()
	b := New(nil)
	require.NoError(t, b.LoadFile("testdata/names.json"))

	dup := writeFile(t, dir, "dup.yaml", `
version: "1"
rules:
  - id: fresh
    assertions: [be_empty]
  - id: goish
    assertions: [be_empty]
`)
	assert.ErrorIs(t, b.LoadFile(dup), ErrDuplicateRule)
	_, ok := b.Get("fresh")
	assert.False(t, ok)
	assert.Equal(t, 3, b.Count())

	self := writeFile(t, dir, "self.yaml", `
version: "1"
rules:
  - id: twice
    assertions: [be_empty]
  - id: twice
    assertions: [be_empty]
`)
	assert.ErrorIs(t, b.LoadFile(self), ErrDuplicateRule)
}

func TestBank_LoadDir(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.LoadDir("testdata"))
	assert.Equal(t, 5, b.Count())
	assert.Len(t, b.Sources(), 2)

	ids := make([]string, 0, b.Count())
	for _, r := range b.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"go_identifier", "goish", "identifier", "pin", "strong_password"}, ids)

	security := b.ByTag("security")
	require.Len(t, security, 2)
	assert.Equal(t, "pin", security[0].ID)
}

func TestBank_LoadDirSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# rules")
	writeFile(t, dir, "rules.yml", `
version: "1"
rules:
  - id: only
    assertions: [be_numeric]
`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	b := New(nil)
	require.NoError(t, b.LoadDir(dir))
	assert.Equal(t, 1, b.Count())

	assert.Error(t, b.LoadDir(filepath.Join(dir, "missing")))
}

func TestBank_Evaluate(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.LoadFile("testdata/password.yaml"))
	e := assertion.NewEngine()

	res, err := b.Evaluate("strong_password", e, "P@@sw0rd9082")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, "strong_password", res.Type)
	assert.Empty(t, res.Target)

	res, err = b.Evaluate("strong_password", e, "password")
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, `"password" should have at least length 10`)

	res, err = b.Evaluate("pin", e, "12")
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, "a PIN has 4 to 6 digits", res.Message)

	_, err = b.Evaluate("absent", e, "x")
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestBank_Matcher(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.LoadFile("testdata/password.yaml"))
	e := assertion.NewEngine()

	m, err := b.Matcher("pin", e)
	require.NoError(t, err)
	assert.True(t, m.Test("1234").Passed)
	assert.False(t, m.Test("12a4").Passed)

	_, err = b.Matcher("absent", e)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestBank_RegisterNestedRules(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.LoadFile("testdata/names.json"))
	e := assertion.NewEngine()

	_, err := b.Matcher("go_identifier", e)
	assert.ErrorIs(t, err, assertion.ErrUnknownType)

	require.NoError(t, b.Register(e))
	assert.True(t, e.HasFactory("identifier"))

	m, err := b.Matcher("go_identifier", e)
	require.NoError(t, err)
	assert.True(t, m.Test("gopher").Passed)
	assert.True(t, m.Test("django").Passed)
	assert.False(t, m.Test("rust").Passed)
	assert.False(t, m.Test("go-pher").Passed)

	r := e.Evaluate(assertion.ParseDefinition("!goish"), "rust")
	assert.True(t, r.Passed)

	err = b.Register(e)
	assert.ErrorIs(t, err, assertion.ErrAlreadyRegistered)
}

func TestBank_RegisterRejectsCycles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cycle.yaml", `
version: "1"
rules:
  - id: a
    assertions: [b]
  - id: b
    assertions: [c]
  - id: c
    assertions: [a, be_empty]
`)
	b := New(nil)
	require.NoError(t, b.LoadFile(path))

	e := assertion.NewEngine()
	err := b.Register(e)
	require.ErrorIs(t, err, ErrRuleCycle)
	assert.Contains(t, err.Error(), "a -> b -> c -> a")
	assert.False(t, e.HasFactory("a"))
}

func TestBank_RegisterRejectsKnownTypesAtomically(t *testing.T) {
	path := writeFile(t, t.TempDir(), "shadow.yaml", `
version: "1"
rules:
  - id: aaa
    assertions: [be_lower_case]
  - id: contain
    assertions: ["contain:x"]
`)
	b := New(nil)
	require.NoError(t, b.LoadFile(path))
	e := assertion.NewEngine()

	err := b.Register(e)
	require.ErrorIs(t, err, assertion.ErrAlreadyRegistered)
	assert.NotErrorIs(t, err, ErrRuleCycle)
	assert.Contains(t, err.Error(), "register rule contain")
	assert.False(t, e.HasFactory("aaa"))

	err = b.Register(e)
	require.ErrorIs(t, err, assertion.ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), "register rule contain")
	assert.False(t, e.HasFactory("aaa"))

	fixed := New(nil)
	require.NoError(t, fixed.LoadFile("testdata/names.json"))
	require.NoError(t, fixed.Register(e))
	assert.True(t, e.HasFactory("identifier"))
}

func TestCheckCycles_SelfReference(t *testing.T) {
	err := checkCycles([]*Rule{{ID: "loop", Assertions: []string{"!loop"}}})
	require.ErrorIs(t, err, ErrRuleCycle)
	assert.Contains(t, err.Error(), "loop -> loop")

	assert.NoError(t, checkCycles([]*Rule{
		{ID: "x", Assertions: []string{"y"}},
		{ID: "y", Assertions: []string{"be_empty"}},
		{ID: "z", Assertions: []string{"x", "y"}},
	}))
}

func TestBank_CheckAll(t *testing.T) {
	path := writeFile(t, t.TempDir(), "env.yaml", `
version: "1"
rules:
  - id: port
    target: PORT
    assertions: [contain_only_digits, "have_length_in_range:2..5"]
  - id: db_password
    target: DB_PASSWORD
    assertions: ["have_at_least_length:12", contain_a_digit]
  - id: untargeted
    assertions: [be_empty]
  - id: host
    target: HOST
    assertions: ["!be_empty"]
`)
	b := New(nil)
	require.NoError(t, b.LoadFile(path))

	results := b.CheckAll(assertion.NewEngine(), map[string]string{
		"PORT":        "8080",
		"DB_PASSWORD": "hunter2",
	})
	require.Len(t, results, 3)

	assert.Equal(t, "db_password", results[0].Type)
	assert.Equal(t, "DB_PASSWORD", results[0].Target)
	assert.False(t, results[0].Passed)
	assert.Equal(t, `"hunter2" should have at least length 12`, results[0].Message)

	assert.Equal(t, "host", results[1].Type)
	assert.False(t, results[1].Passed)
	assert.Equal(t, "target not found: HOST", results[1].Message)

	assert.Equal(t, "port", results[2].Type)
	assert.True(t, results[2].Passed)
}
