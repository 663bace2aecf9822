package ordered_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.clearcheck/pkg/matcher"
	"digital.vasic.clearcheck/pkg/ordered"
)

func TestIntMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher matcher.Matcher[int]
		value   int
		want    bool
	}{
		{"greater than", ordered.BeGreaterThan(3), 4, true},
		{"greater than equal", ordered.BeGreaterThan(3), 3, false},
		{"greater than or equal", ordered.BeGreaterThanOrEqual(3), 3, true},
		{"greater than or equal below", ordered.BeGreaterThanOrEqual(3), 2, false},
		{"less than", ordered.BeLessThan(3), 2, true},
		{"less than equal", ordered.BeLessThan(3), 3, false},
		{"less than or equal", ordered.BeLessThanOrEqual(3), 3, true},
		{"less than or equal above", ordered.BeLessThanOrEqual(3), 4, false},
		{"in range lower edge", ordered.BeInRange(1, 5), 1, true},
		{"in range upper edge", ordered.BeInRange(1, 5), 5, true},
		{"in range outside", ordered.BeInRange(1, 5), 6, false},
		{"exclusive range lower edge", ordered.BeInExclusiveRange(1, 5), 1, true},
		{"exclusive range upper edge", ordered.BeInExclusiveRange(1, 5), 5, false},
		{"positive", ordered.BePositive[int](), 1, true},
		{"positive zero", ordered.BePositive[int](), 0, false},
		{"negative", ordered.BeNegative[int](), -1, true},
		{"negative zero", ordered.BeNegative[int](), 0, false},
		{"zero", ordered.BeZero[int](), 0, true},
		{"zero non-zero", ordered.BeZero[int](), 7, false},
		{"even", ordered.BeEven[int](), -4, true},
		{"even odd", ordered.BeEven[int](), 3, false},
		{"odd", ordered.BeOdd[int](), -3, true},
		{"odd even", ordered.BeOdd[int](), 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.matcher.Test(tt.value)
			assert.Equal(t, tt.want, v.Passed)
			assert.NotEqual(t, v.FailureMessage, v.NegatedFailureMessage)

			inverted := matcher.Not(tt.matcher).Test(tt.value)
			assert.Equal(t, !tt.want, inverted.Passed)
			assert.Equal(t, v.NegatedFailureMessage, inverted.FailureMessage)
		})
	}
}

func TestFloatMatchers(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name    string
		matcher matcher.Matcher[float64]
		value   float64
		want    bool
	}{
		{"nan", ordered.BeNaN[float64](), math.NaN(), true},
		{"nan number", ordered.BeNaN[float64](), 1.5, false},
		{"finite", ordered.BeFinite[float64](), 1.5, true},
		{"finite inf", ordered.BeFinite[float64](), math.Inf(1), false},
		{"finite nan", ordered.BeFinite[float64](), math.NaN(), false},
		{"zero", ordered.BeZeroFloat[float64](), 0, true},
		{"zero negative", ordered.BeZeroFloat[float64](), negZero, true},
		{"zero non-zero", ordered.BeZeroFloat[float64](), 0.1, false},
		{"positive", ordered.BePositiveFloat[float64](), 0.1, true},
		{"positive inf", ordered.BePositiveFloat[float64](), math.Inf(1), true},
		{"positive negative zero", ordered.BePositiveFloat[float64](), negZero, false},
		{"positive nan", ordered.BePositiveFloat[float64](), math.NaN(), false},
		{"negative", ordered.BeNegativeFloat[float64](), -0.1, true},
		{"negative zero", ordered.BeNegativeFloat[float64](), negZero, true},
		{"negative positive", ordered.BeNegativeFloat[float64](), 0.1, false},
		{"greater than", ordered.BeGreaterThan(1.5), 1.6, true},
		{"in range", ordered.BeInRange(0.0, 1.0), 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Test(tt.value).Passed)
			assert.Equal(t, !tt.want, matcher.ShouldNot(tt.value, tt.matcher))
		})
	}
}

func TestOrderedStrings(t *testing.T) {
	assert.True(t, matcher.Should("b", ordered.BeInRange("a", "c")))
	assert.True(t, matcher.Should("apple", ordered.BeLessThan("banana")))
}

func TestMessages(t *testing.T) {
	v := ordered.BeGreaterThanOrEqual(10).Test(3)
	assert.Equal(t, "3 should be greater than equals to 10", v.FailureMessage)
	assert.Equal(t, "3 should not be greater than equals to 10", v.NegatedFailureMessage)

	v = ordered.BeInExclusiveRange(1, 5).Test(5)
	assert.Equal(t, "5 should fall in the range [1, 5)", v.FailureMessage)

	type celsius int
	v = ordered.BeNegative[celsius]().Test(4)
	assert.Equal(t, "4 should be negative", v.FailureMessage)
}
