package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Service: "recipebox", Env: "test", Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("visible", "user_id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "visible", entry["msg"])
	require.Equal(t, "recipebox", entry["service"])
	require.Equal(t, "test", entry["env"])
	require.EqualValues(t, 7, entry["user_id"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Service: "recipebox", Level: "debug", Format: "text"}, &buf)

	logger.Debug("shown")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "service=recipebox")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestContextRoundTrip(t *testing.T) {
	require.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	logger := NewWithWriter(Config{Format: "text"}, &buf)
	ctx := WithContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}
