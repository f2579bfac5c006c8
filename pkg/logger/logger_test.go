package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestInit_FileOutput(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		defaultLogger = nil
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = path

	require.NoError(t, Init(cfg))
	InfoContext(ContextWithRequestID(context.Background(), "abc"), "hello", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"request_id":"abc"`)
}
