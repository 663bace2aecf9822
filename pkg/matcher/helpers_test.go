package matcher_test

import (
	"github.com/stretchr/testify/mock"

	"digital.vasic.clearcheck/pkg/matcher"
)

// countingMatcher records every Test call and returns the verdict
// configured with On("Test", value).Return(verdict).
type countingMatcher struct {
	mock.Mock
}

func (m *countingMatcher) Test(value string) matcher.Verdict {
	return m.Called(value).Get(0).(matcher.Verdict)
}

func stub(passed bool, failure, negated string) matcher.Matcher[string] {
	return matcher.Func[string](func(string) matcher.Verdict {
		return matcher.NewVerdict(passed, failure, negated)
	})
}

func counting(value string, v matcher.Verdict) *countingMatcher {
	m := &countingMatcher{}
	m.On("Test", value).Return(v)
	return m
}
