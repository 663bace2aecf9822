package assertion

import (
	"fmt"
	"testing"

	"digital.vasic.clearcheck/pkg/matcher"
)

// failedPrefix starts every assertion failure message.
const failedPrefix = "assertion failed: "

// Failure is the panic value raised by That and ThatNot.
type Failure struct {
	Message string
}

// Error implements error so recovered panics can be inspected
// with errors.As.
func (f *Failure) Error() string {
	return failedPrefix + f.Message
}

// That panics with a *Failure carrying the failure message when
// value does not satisfy m.
func That[T any](value T, m matcher.Matcher[T]) {
	v := m.Test(value)
	if !v.Passed {
		panic(&Failure{Message: v.FailureMessage})
	}
}

// ThatNot panics with a *Failure carrying the negated failure
// message when value satisfies m.
func ThatNot[T any](value T, m matcher.Matcher[T]) {
	v := m.Test(value)
	if v.Passed {
		panic(&Failure{Message: v.NegatedFailureMessage})
	}
}

// Expect reports a test error with the failure message when value
// does not satisfy m. It does not stop the test.
func Expect[T any](t testing.TB, value T, m matcher.Matcher[T]) bool {
	t.Helper()
	v := m.Test(value)
	if !v.Passed {
		t.Errorf("%s%s", failedPrefix, v.FailureMessage)
	}
	return v.Passed
}

// ExpectNot reports a test error with the negated failure message
// when value satisfies m.
func ExpectNot[T any](t testing.TB, value T, m matcher.Matcher[T]) bool {
	t.Helper()
	v := m.Test(value)
	if v.Passed {
		t.Errorf("%s%s", failedPrefix, v.NegatedFailureMessage)
	}
	return !v.Passed
}

// FailedUnary panics with the one-operand failure format:
//
//	assertion failed: `(left must be empty)`
//	  left: `[1 2]`
func FailedUnary(operation string, left any) {
	panic(&Failure{Message: fmt.Sprintf(
		"`(left %s)`\n  left: `%v`",
		operation, left,
	)})
}

// FailedBinary panics with the two-operand failure format:
//
//	assertion failed: `(left must contain right)`
//	  left: `[1 2]`,
//	 right: `3`
func FailedBinary(operation string, left, right any) {
	panic(&Failure{Message: fmt.Sprintf(
		"`(left %s right)`\n  left: `%v`,\n right: `%v`",
		operation, left, right,
	)})
}
