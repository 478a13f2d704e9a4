package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(NewLogger(&buf, level, "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestNewLogger(t *testing.T) {
	var text, js bytes.Buffer

	NewLogger(&text, slog.LevelInfo, "console").Info("saved", "op", "add_transaction")
	assert.Contains(t, text.String(), "msg=saved")
	assert.Contains(t, text.String(), "op=add_transaction")

	NewLogger(&js, slog.LevelWarn, "json").Info("dropped")
	assert.Empty(t, js.String(), "below the configured level")
}

func TestLogHelpers(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	LogError(errors.New("disk full"), "save failed", Fields{"op": "restore"})
	LogWarn("kept in memory", Fields{"op": "clear"})
	LogDebug("saved", nil)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "ERROR", first["level"])
	assert.Equal(t, "disk full", first["error"])
	assert.Equal(t, "restore", first["op"])

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "WARN", second["level"])
}
