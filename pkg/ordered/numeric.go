package ordered

import (
	"math"

	"digital.vasic.clearcheck/pkg/matcher"
)

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// BePositive matches integers greater than zero.
func BePositive[T Integer]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v > 0 },
		"%v should be positive", "%v should not be positive")
}

// BeNegative matches integers less than zero.
func BeNegative[T Integer]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v < 0 },
		"%v should be negative", "%v should not be negative")
}

// BeZero matches the zero integer.
func BeZero[T Integer]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v == 0 },
		"%v should be zero", "%v should not be zero")
}

// BeEven matches even integers.
func BeEven[T Integer]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v%2 == 0 },
		"%v should be even", "%v should not be even")
}

// BeOdd matches odd integers.
func BeOdd[T Integer]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v%2 != 0 },
		"%v should be odd", "%v should not be odd")
}

// BeNaN matches the IEEE 754 not-a-number value.
func BeNaN[T Float]() matcher.Matcher[T] {
	return unary(func(v T) bool { return math.IsNaN(float64(v)) },
		"%v should be NaN", "%v should not be NaN")
}

// BeFinite matches floats that are neither NaN nor infinite.
func BeFinite[T Float]() matcher.Matcher[T] {
	return unary(func(v T) bool {
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}, "%v should be finite", "%v should not be finite")
}

// BeZeroFloat matches positive and negative zero.
func BeZeroFloat[T Float]() matcher.Matcher[T] {
	return unary(func(v T) bool { return v == 0 },
		"%v should be zero", "%v should not be zero")
}

// BePositiveFloat matches floats with a clear sign bit, including
// +0 and +Inf.
func BePositiveFloat[T Float]() matcher.Matcher[T] {
	return unary(func(v T) bool {
		f := float64(v)
		return !math.IsNaN(f) && !math.Signbit(f)
	}, "%v should be positive", "%v should not be positive")
}

// BeNegativeFloat matches floats with the sign bit set, including
// -0 and -Inf.
func BeNegativeFloat[T Float]() matcher.Matcher[T] {
	return unary(func(v T) bool {
		f := float64(v)
		return !math.IsNaN(f) && math.Signbit(f)
	}, "%v should be negative", "%v should not be negative")
}

func unary[T any](
	accept func(T) bool,
	format, negatedFormat string,
) matcher.Matcher[T] {
	return matcher.Func[T](func(value T) matcher.Verdict {
		return matcher.Formatted(accept(value), format, negatedFormat, value)
	})
}
