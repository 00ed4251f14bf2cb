package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLogger_ContextFieldsPrecedeArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(NewSlog(&buf, "json", "debug"))

	ctx := WithFields(context.Background(), "request_id", "abc")
	logger.Info(ctx, "relayed", "title", "Backup job")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "relayed", line["msg"])
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, "Backup job", line["title"])
}

func TestSLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(NewSlog(&buf, "text", "warn"))

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSLogger_NilLogger(t *testing.T) {
	logger := New(nil)
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), "dropped", "error", "x")
	})
}

func TestWithFields_Accumulates(t *testing.T) {
	ctx := WithFields(context.Background(), "a", 1)
	ctx = WithFields(ctx, "b", 2)
	assert.Equal(t, []any{"a", 1, "b", 2}, contextFields(ctx))
	assert.Nil(t, contextFields(context.Background()))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
