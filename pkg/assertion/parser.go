package assertion

import "strings"

// negatePrefix marks an inverted assertion in compact form.
const negatePrefix = "!"

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into its components. If no colon is present
// the entire string is treated as the type and value is nil.
//
// Examples:
//
//	"contain:func"              -> ("contain", "func")
//	"be_empty"                  -> ("be_empty", nil)
//	"have_at_least_length:100"  -> ("have_at_least_length", "100")
func ParseAssertionString(
	s string,
) (assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = strings.TrimSpace(parts[0])

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}

// ParseDefinition parses a compact assertion string into a
// Definition. A leading "!" negates it:
//
//	"!begin_with:pass" -> {Type: "begin_with", Value: "pass", Negate: true}
func ParseDefinition(s string) Definition {
	s = strings.TrimSpace(s)
	negate := strings.HasPrefix(s, negatePrefix)
	if negate {
		s = strings.TrimPrefix(s, negatePrefix)
	}

	typ, value := ParseAssertionString(s)
	return Definition{Type: typ, Value: value, Negate: negate}
}

// ParseDefinitions parses each compact string with
// ParseDefinition.
func ParseDefinitions(specs []string) []Definition {
	defs := make([]Definition, 0, len(specs))
	for _, s := range specs {
		defs = append(defs, ParseDefinition(s))
	}
	return defs
}
