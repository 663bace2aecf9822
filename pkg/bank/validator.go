package bank

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation issue found in a bank
// file.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("rules[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFile validates a bank file structure and returns all
// errors found, rather than stopping at the first.
func ValidateFile(path string) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{Field: "file", Message: err.Error(), Index: -1}}
	}

	file, err := decode(path, data)
	if err != nil {
		return []ValidationError{{Field: "syntax", Message: err.Error(), Index: -1}}
	}

	var errs []ValidationError
	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field: "version", Message: "version is required", Index: -1,
		})
	}

	ids := make(map[string]bool)
	for i := range file.Rules {
		r := &file.Rules[i]
		switch {
		case r.ID == "":
			errs = append(errs, ValidationError{
				Field: "id", Message: "rule ID is required", Index: i,
			})
		case ids[r.ID]:
			errs = append(errs, ValidationError{
				Field: "id", Message: fmt.Sprintf("duplicate ID: %s", r.ID), Index: i,
			})
		default:
			ids[r.ID] = true
		}

		if !validCombine(r.Combine) {
			errs = append(errs, ValidationError{
				Field:   "combine",
				Message: fmt.Sprintf("unknown combine kind: %s", r.Combine),
				Index:   i,
			})
		}
		if len(r.Assertions)+len(r.Definitions) == 0 {
			errs = append(errs, ValidationError{
				Field: "assertions", Message: "at least one assertion is required", Index: i,
			})
		}
		for j, d := range r.Defs() {
			if d.Type == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("assertions[%d]", j),
					Message: "assertion type is required",
					Index:   i,
				})
			}
		}
	}

	return errs
}

// validateRule applies the checks LoadFile enforces.
func validateRule(r *Rule) error {
	if r.ID == "" {
		return fmt.Errorf("%w: rule ID is required", ErrInvalidRule)
	}
	if !validCombine(r.Combine) {
		return fmt.Errorf("%w: %s: unknown combine kind %q", ErrInvalidRule, r.ID, r.Combine)
	}
	defs := r.Defs()
	if len(defs) == 0 {
		return fmt.Errorf("%w: %s: at least one assertion is required", ErrInvalidRule, r.ID)
	}
	for j, d := range defs {
		if d.Type == "" {
			return fmt.Errorf("%w: %s: assertion %d has no type", ErrInvalidRule, r.ID, j)
		}
	}
	return nil
}

func validCombine(kind string) bool {
	switch strings.ToLower(kind) {
	case "", "and", "or":
		return true
	}
	return false
}

// checkCycles rejects rule sets in which a rule reaches itself
// through assertion types naming other rules.
func checkCycles(rules []*Rule) error {
	refs := make(map[string][]string, len(rules))
	for _, r := range rules {
		refs[r.ID] = nil
	}
	for _, r := range rules {
		for _, d := range r.Defs() {
			if _, isRule := refs[d.Type]; isRule {
				refs[r.ID] = append(refs[r.ID], d.Type)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(rules))

	var visit func(id string, path []string) error
	visit = func(id string, path []string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: %s", ErrRuleCycle,
				strings.Join(append(path, id), " -> "))
		case done:
			return nil
		}
		state[id] = visiting
		for _, next := range refs[id] {
			if err := visit(next, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, r := range rules {
		if err := visit(r.ID, nil); err != nil {
			return err
		}
	}
	return nil
}
