package optional_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.clearcheck/pkg/matcher"
	"digital.vasic.clearcheck/pkg/optional"
)

func TestOptionMatchers(t *testing.T) {
	n := 42
	var none *int

	assert.True(t, matcher.Should(none, optional.BeNone[int]()))
	assert.False(t, matcher.Should(&n, optional.BeNone[int]()))
	assert.True(t, matcher.Should(&n, optional.BeSome[int]()))
	assert.False(t, matcher.Should(none, optional.BeSome[int]()))

	even := func(v int) bool { return v%2 == 0 }
	assert.True(t, matcher.Should(&n, optional.SatisfySome(even)))
	assert.False(t, matcher.Should(none, optional.SatisfySome(even)))

	v := optional.BeNone[int]().Test(&n)
	assert.Equal(t, "Option value should be none", v.FailureMessage)
	assert.Equal(t, "Option value should not be none", v.NegatedFailureMessage)
}

func TestOutcomeMatchers(t *testing.T) {
	ok := optional.Of(strconv.Atoi("42"))
	bad := optional.Of(strconv.Atoi("forty-two"))

	assert.True(t, matcher.Should(ok, optional.BeOk[int]()))
	assert.False(t, matcher.Should(bad, optional.BeOk[int]()))
	assert.True(t, matcher.Should(bad, optional.BeErr[int]()))
	assert.False(t, matcher.Should(ok, optional.BeErr[int]()))

	positive := func(v int) bool { return v > 0 }
	assert.True(t, matcher.Should(ok, optional.SatisfyOk(positive)))
	assert.False(t, matcher.Should(bad, optional.SatisfyOk(positive)))

	failed := optional.Of("", errors.New("boom"))
	v := optional.BeOk[string]().Test(failed)
	assert.Equal(t, "Result value should be ok, got error boom", v.FailureMessage)
	assert.Equal(t, "Result value should not be ok, got error boom", v.NegatedFailureMessage)
}
