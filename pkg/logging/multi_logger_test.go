package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Info(msg string, fields ...Field)  { m.Called(msg) }
func (m *mockLogger) Warn(msg string, fields ...Field)  { m.Called(msg) }
func (m *mockLogger) Error(msg string, fields ...Field) { m.Called(msg) }
func (m *mockLogger) Debug(msg string, fields ...Field) { m.Called(msg) }

func (m *mockLogger) WithFields(fields ...Field) Logger {
	m.Called(len(fields))
	return m
}

func (m *mockLogger) LogVerdict(v VerdictLog) { m.Called(v) }

func (m *mockLogger) Close() error {
	return m.Called().Error(0)
}

func TestMultiLogger_FanOut(t *testing.T) {
	a, b := &mockLogger{}, &mockLogger{}
	for _, m := range []*mockLogger{a, b} {
		m.On("Info", "i").Once()
		m.On("Warn", "w").Once()
		m.On("Error", "e").Once()
		m.On("Debug", "d").Once()
		m.On("LogVerdict", VerdictLog{Type: "contain"}).Once()
		m.On("WithFields", 1).Once()
	}

	multi := NewMultiLogger(a, b)
	multi.Info("i")
	multi.Warn("w")
	multi.Error("e")
	multi.Debug("d")
	multi.LogVerdict(VerdictLog{Type: "contain"})
	assert.IsType(t, &MultiLogger{}, multi.WithFields(StringField("k", "v")))

	a.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestMultiLogger_CloseJoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	a, b := &mockLogger{}, &mockLogger{}
	a.On("Close").Return(errA)
	b.On("Close").Return(nil)

	err := NewMultiLogger(a, b).Close()
	assert.ErrorIs(t, err, errA)
}

func TestMultiLogger_RealLoggers(t *testing.T) {
	var jsonBuf, consoleBuf bytes.Buffer
	multi := NewMultiLogger(
		NewJSONLoggerTo(&jsonBuf, LevelInfo),
		NewConsoleLoggerTo(&consoleBuf, false),
		NullLogger{},
	)

	multi.Warn("careful")
	assert.Contains(t, jsonBuf.String(), "careful")
	assert.Contains(t, consoleBuf.String(), "careful")
	assert.NoError(t, multi.Close())
}
