package internal

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseLogLevel(raw), "level %q", raw)
	}
}

func TestLogLevels(t *testing.T) {
	defer SetInternalLogLevel(slog.LevelError)
	defer SetLogLevel(slog.LevelInfo)

	SetRawLogLevel("debug")
	assert.True(t, GetLogger().Enabled(t.Context(), slog.LevelDebug))

	SetLogLevel(slog.LevelError)
	assert.False(t, GetLogger().Enabled(t.Context(), slog.LevelWarn))

	assert.False(t, GetInternalLogger().Enabled(t.Context(), slog.LevelWarn))
	SetInternalLogLevel(slog.LevelWarn)
	assert.True(t, GetInternalLogger().Enabled(t.Context(), slog.LevelWarn))
}

func TestLogSinkWritesConsoleAndFile(t *testing.T) {
	defer SetLogWriter(os.Stderr)
	defer SetLogPath("")
	defer CloseLogger()

	console := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "logs", "tablekit.log")

	SetLogWriter(console)
	SetLogPath(path)

	GetLogger().Error("disk full", "device", "sda")
	CloseLogger()

	assert.Contains(t, console.String(), `"msg":"disk full"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"device":"sda"`)
}

func TestInternalLoggerTagsComponent(t *testing.T) {
	defer SetLogWriter(os.Stderr)

	console := &bytes.Buffer{}
	SetLogWriter(console)

	GetInternalLogger().Error("render failed")
	assert.Contains(t, console.String(), `"component":"tablekit"`)
}
