package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger(level LogLevel, format LogFormat) (*DefaultLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(level, format)
	logger.out = log.New(&buf, "", 0)
	return logger, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarning},
		{"warning", LogLevelWarning},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"garbage", LogLevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, ParseFormat("json"))
	assert.Equal(t, LogFormatJSON, ParseFormat("JSON"))
	assert.Equal(t, LogFormatHuman, ParseFormat("human"))
	assert.Equal(t, LogFormatHuman, ParseFormat(""))
}

func TestLogWarningHumanFormat(t *testing.T) {
	logger, buf := newCapturedLogger(LogLevelDebug, LogFormatHuman)

	logger.LogWarning(context.Background(), "skipped hunk", map[string]interface{}{
		"file": "main.go",
		"kind": "bad-hunk-header",
	})

	out := buf.String()
	assert.Contains(t, out, "[WARNING] skipped hunk")
	assert.Contains(t, out, "file=main.go")
	assert.Contains(t, out, "kind=bad-hunk-header")
}

func TestLogInfoJSONFormat(t *testing.T) {
	logger, buf := newCapturedLogger(LogLevelDebug, LogFormatJSON)

	logger.LogInfo(context.Background(), "extracted changes", map[string]interface{}{
		"records": 3,
	})

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "info", payload["level"])
	assert.Equal(t, "extracted changes", payload["message"])
	assert.Equal(t, float64(3), payload["records"])
}

func TestLevelSuppressesLowerMessages(t *testing.T) {
	logger, buf := newCapturedLogger(LogLevelError, LogFormatHuman)

	logger.LogInfo(context.Background(), "quiet", nil)
	logger.LogWarning(context.Background(), "still quiet", nil)

	assert.Empty(t, buf.String())
}
