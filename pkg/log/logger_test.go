package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, FormatText, &buf)

	assert.NotNil(t, logger)
	assert.NotNil(t, logger.logger)
}

func TestSlogLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, FormatText, &buf)

	logger.Info("test info", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test info")
	assert.Contains(t, output, "key=value")
}

func TestSlogLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, FormatJSON, &buf)

	logger.Info("test info", "key", "value")

	output := buf.String()
	assert.Contains(t, output, `"msg":"test info"`)
	assert.Contains(t, output, `"key":"value"`)
}

func TestSlogLogger_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelInfo, "yaml", &buf)

	logger.Info("test info", "key", "value")

	assert.Contains(t, buf.String(), "key=value")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelWarn, FormatText, &buf)

	logger.Debug("debug message") // should be filtered out
	logger.Info("info message")   // should be filtered out
	logger.Warn("warn message")   // should appear
	logger.Error("error message") // should appear

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"INFO", slog.LevelInfo},
		{"Error", slog.LevelError},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err, "level %q", tt.input)
		assert.Equal(t, tt.expected, level)
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNop(t *testing.T) {
	logger := Nop()

	// Must not panic; there is nothing else to observe.
	logger.Debug("a")
	logger.Info("b", "k", "v")
	logger.Warn("c")
	logger.Error("d")
}
