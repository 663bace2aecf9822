// Package bank loads named assertion rules from JSON and YAML
// files and turns them into composite matchers.
package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.clearcheck/pkg/assertion"
	"digital.vasic.clearcheck/pkg/logging"
	"digital.vasic.clearcheck/pkg/matcher"
)

var (
	// ErrRuleNotFound is returned for an unknown rule ID.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrDuplicateRule is returned when a rule ID is loaded
	// twice.
	ErrDuplicateRule = errors.New("duplicate rule")

	// ErrInvalidRule is returned for a rule that fails
	// validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrRuleCycle is returned when rules reference each other
	// in a cycle.
	ErrRuleCycle = errors.New("rule reference cycle")
)

// Bank manages collections of rules loaded from files.
type Bank struct {
	mu      sync.RWMutex
	rules   map[string]*Rule
	sources []string
	logger  logging.Logger
}

// New creates a new empty Bank. A nil logger discards output.
func New(logger logging.Logger) *Bank {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Bank{
		rules:  make(map[string]*Rule),
		logger: logger,
	}
}

// LoadFile loads rules from a JSON, YAML or YML file. The format
// is chosen by extension.
func (b *Bank) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file %s: %w", path, err)
	}

	file, err := decode(path, data)
	if err != nil {
		return fmt.Errorf("parse bank file %s: %w", path, err)
	}

	if err := b.add(path, file); err != nil {
		return err
	}

	b.logger.Info("rule bank loaded",
		logging.StringField("path", path),
		logging.IntField("rules", len(file.Rules)),
	)
	return nil
}

// LoadDir loads all .json, .yaml and .yml files from a directory.
// It does not recurse into subdirectories.
func (b *Bank) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read bank directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isBankFile(entry.Name()) {
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// add validates file and stores its rules. Nothing is stored if
// any rule is rejected.
func (b *Bank) add(source string, file *RuleFile) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]bool, len(file.Rules))
	for i := range file.Rules {
		r := &file.Rules[i]
		if err := validateRule(r); err != nil {
			return fmt.Errorf("rule at index %d in %s: %w", i, source, err)
		}
		if seen[r.ID] || b.rules[r.ID] != nil {
			return fmt.Errorf("%w: %s in %s", ErrDuplicateRule, r.ID, source)
		}
		seen[r.ID] = true
	}

	for i := range file.Rules {
		r := &file.Rules[i]
		b.rules[r.ID] = r
	}
	b.sources = append(b.sources, source)
	return nil
}

// Get retrieves a rule by ID.
func (b *Bank) Get(id string) (*Rule, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.rules[id]
	return r, ok
}

// All returns all loaded rules sorted by ID.
func (b *Bank) All() []*Rule {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]*Rule, 0, len(b.rules))
	for _, r := range b.rules {
		result = append(result, r)
	}
	slices.SortFunc(result, func(x, y *Rule) int {
		return strings.Compare(x.ID, y.ID)
	})
	return result
}

// ByTag returns rules carrying tag, sorted by ID.
func (b *Bank) ByTag(tag string) []*Rule {
	var result []*Rule
	for _, r := range b.All() {
		if slices.Contains(r.Tags, tag) {
			result = append(result, r)
		}
	}
	return result
}

// Count returns the number of loaded rules.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rules)
}

// Sources returns the list of loaded file paths.
func (b *Bank) Sources() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.sources)
}

// Matcher builds the composite matcher for rule id using e. Rules
// referenced by id must already be registered with e (see
// Register).
func (b *Bank) Matcher(
	id string,
	e assertion.Engine,
) (*matcher.Composite[string], error) {
	r, ok := b.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	c, err := assertion.BuildComposite(e, kindOf(r), r.Defs())
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", id, err)
	}
	return c, nil
}

// Evaluate checks value against rule id. The Result type is the
// rule ID.
func (b *Bank) Evaluate(
	id string,
	e assertion.Engine,
	value string,
) (assertion.Result, error) {
	r, ok := b.Get(id)
	if !ok {
		return assertion.Result{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	return e.EvaluateRule(r.ID, "", kindOf(r), r.Defs(), value), nil
}

// CheckAll evaluates every rule that names a target against the
// matching entry of values, in rule ID order. Rules without a
// target are skipped; a missing value fails the rule.
func (b *Bank) CheckAll(
	e assertion.Engine,
	values map[string]string,
) []assertion.Result {
	var results []assertion.Result
	for _, r := range b.All() {
		if r.Target == "" {
			continue
		}
		value, ok := values[r.Target]
		if !ok {
			b.logger.Warn("rule target not set",
				logging.StringField("rule", r.ID),
				logging.StringField("target", r.Target),
			)
			results = append(results, assertion.Result{
				Type:    r.ID,
				Target:  r.Target,
				Message: fmt.Sprintf("target not found: %s", r.Target),
			})
			continue
		}
		results = append(results, e.EvaluateRule(r.ID, r.Target, kindOf(r), r.Defs(), value))
	}
	return results
}

// Register registers every rule with e as an assertion type named
// by its ID, so rules can reference each other and be nested.
// Rule IDs that e already knows and reference cycles are rejected
// before anything is registered.
func (b *Bank) Register(e assertion.Engine) error {
	rules := b.All()
	for _, r := range rules {
		if e.HasFactory(r.ID) {
			return fmt.Errorf("register rule %s: %w", r.ID, assertion.ErrAlreadyRegistered)
		}
	}
	if err := checkCycles(rules); err != nil {
		return err
	}
	for _, r := range rules {
		factory := assertion.CompositeFactory(e, kindOf(r), r.Defs())
		if err := e.Register(r.ID, factory); err != nil {
			return fmt.Errorf("register rule %s: %w", r.ID, err)
		}
	}
	return nil
}

func decode(path string, data []byte) (*RuleFile, error) {
	var file RuleFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}
	return &file, nil
}

func isBankFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func kindOf(r *Rule) matcher.Kind {
	if strings.EqualFold(r.Combine, "or") {
		return matcher.KindOr
	}
	return matcher.KindAnd
}
