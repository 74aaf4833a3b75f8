package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wcmckee/SortPictures/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	t.Cleanup(func() { logger = newLogger() })
	return &buf
}

func TestBasicLogging(t *testing.T) {
	buf := configureBuffer(t)

	Info("info message")
	assert.Contains(t, buf.String(), "info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	Warnf("formatted %s", "warning")
	assert.Contains(t, buf.String(), "formatted warning")
	buf.Reset()

	Error("error message")
	assert.Contains(t, buf.String(), "error message")
}

func TestDebugLogging(t *testing.T) {
	buf := configureBuffer(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	SetDebug(false)
}

func TestStructuredFields(t *testing.T) {
	buf := configureBuffer(t)

	With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	// Chained fields accumulate
	With(F("key1", "value1")).With(F("key2", 123)).Info("chained")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf), WithJSON())
	t.Cleanup(func() {
		logger = newLogger()
	})

	With(F("key1", "value1")).Info("json message")

	var entry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry)
	require.NoError(t, err)
	assert.Equal(t, "json message", entry["msg"])
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogWithError(t *testing.T) {
	buf := configureBuffer(t)

	actionErr := errors.NewActionError("move failed", "/pics/a.jpg", errors.MoveFailed, nil)
	LogWithError(actionErr).Error("action error occurred")
	output := buf.String()
	assert.Contains(t, output, "action error occurred")
	assert.Contains(t, output, "/pics/a.jpg")
	assert.Contains(t, output, "error_kind")
	buf.Reset()

	configErr := errors.NewConfigError("bad value", "--start", errors.OutOfRangeStart, nil)
	LogWithError(configErr).Error("config error occurred")
	output = buf.String()
	assert.Contains(t, output, "option")
	assert.Contains(t, output, "--start")
	buf.Reset()

	// Nil errors must not panic
	LogWithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
}
