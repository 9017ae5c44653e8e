package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()

	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestFormatKV(t *testing.T) {
	assert.Equal(t, "msg", formatKV("msg"))
	assert.Equal(t, "msg key=value", formatKV("msg", "key", "value"))
	assert.Equal(t, "msg a=1 b=2", formatKV("msg", "a", 1, "b", 2))
	assert.Equal(t, "msg dangling", formatKV("msg", "dangling"))
}

func TestLoggingDoesNotPanic(t *testing.T) {
	Init()

	assert.NotPanics(t, func() {
		Info("info message", "user_id", "abc")
		Infof("info %s", "formatted")
		Error("error message")
		Errorf("error %d", 42)
		Debug("debug message")
		Debugf("debug %v", true)
	})
}
