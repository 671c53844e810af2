package logger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpclique/logger"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrUnknownLevel)
}

func TestNew_Streams(t *testing.T) {
	for _, cfg := range []logger.Config{
		{Level: "info", Format: "json", Output: "stdout"},
		{Level: "debug", Format: "text", Output: "stderr"},
	} {
		l, c, err := logger.New(cfg)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.NoError(t, c.Close())
	}

	_, _, err := logger.New(logger.Config{Level: "chatty"})
	assert.ErrorIs(t, err, logger.ErrUnknownLevel)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.log")
	l, c, err := logger.New(logger.Config{Level: "info", Output: "file", FilePath: path, MaxSize: 1})
	require.NoError(t, err)

	l.Info("incumbent improved", "size", 7)
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"incumbent improved"`)
	assert.Contains(t, string(data), `"size":7`)
}
