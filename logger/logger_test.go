package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	Init("  ")
	lg, ok := Log.(*slog.Logger)
	assert.True(t, ok)
	assert.NotNil(t, lg)

	Init("DEBUG")
	_, ok = Log.(*slog.Logger)
	assert.True(t, ok)
}

func TestWithServiceName(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	fields := withServiceName(nil)
	assert.Equal(t, "zola-posts", fields["service_name"])

	t.Setenv("SERVICE_NAME", "exporter-ci")
	fields = withServiceName(Fields{"post_id": 3})
	assert.Equal(t, "exporter-ci", fields["service_name"])
	assert.Equal(t, 3, fields["post_id"])

	fields = withServiceName(Fields{"service_name": "explicit"})
	assert.Equal(t, "explicit", fields["service_name"])
}

func TestHelpersDoNotPanic(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	Init("error")

	assert.NotPanics(t, func() {
		DebugWithFields("debug", Fields{"k": "v"})
		InfoWithFields("info", nil)
		ErrorWithFields("error", Fields{"err": "boom"})
	})
}

func TestLoggerWritesJSONLinesToGivenWriter(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	Log = NewLoggerTo(&buf, "info")

	DebugWithFields("hidden at info", Fields{"k": "v"})
	ErrorWithFields("export failed", Fields{"post_id": 2})
	require.NoError(t, Log.(*slog.Logger).Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "export failed", entry["message"])
	assert.NotContains(t, buf.String(), "hidden at info")
}

func TestNewLoggerWritesToStderr(t *testing.T) {
	prev := Log
	prevStderr := os.Stderr
	t.Cleanup(func() {
		Log = prev
		os.Stderr = prevStderr
	})

	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer f.Close()
	os.Stderr = f

	Log = NewLogger("info")
	os.Stderr = prevStderr
	InfoWithFields("export finished", Fields{"written": 2})
	require.NoError(t, Log.(*slog.Logger).Flush())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "export finished")
}
