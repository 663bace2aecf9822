package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssertionString(t *testing.T) {
	tests := []struct {
		input     string
		wantType  string
		wantValue any
	}{
		{"contain:func", "contain", "func"},
		{"be_empty", "be_empty", nil},
		{"have_at_least_length:100", "have_at_least_length", "100"},
		{"match:^a:b$", "match", "^a:b$"},
		{" equal :x", "equal", "x"},
		{"begin_with:", "begin_with", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, value := ParseAssertionString(tt.input)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseDefinition(t *testing.T) {
	assert.Equal(t,
		Definition{Type: "begin_with", Value: "pass", Negate: true},
		ParseDefinition("!begin_with:pass"),
	)
	assert.Equal(t,
		Definition{Type: "be_empty", Negate: true},
		ParseDefinition("  !be_empty "),
	)
	assert.Equal(t,
		Definition{Type: "contain", Value: "!"},
		ParseDefinition("contain:!"),
	)
}

func TestParseDefinitions(t *testing.T) {
	defs := ParseDefinitions([]string{"be_numeric", "!contain:-"})
	assert.Len(t, defs, 2)
	assert.False(t, defs[0].Negate)
	assert.True(t, defs[1].Negate)
	assert.Equal(t, "-", defs[1].Value)

	assert.Empty(t, ParseDefinitions(nil))
}
