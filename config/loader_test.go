package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpclique/config"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lpclique.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.NewLoader(config.WithSearchPaths()).Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Search.TimeLimit)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.False(t, cfg.Search.GreedySeed)
	assert.Zero(t, cfg.Search.Epsilon)
	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeYAML(t, `
search:
  time_limit: 90s
  workers: 2
  greedy_seed: true
log:
  level: debug
  max_backups: 9
`)
	t.Setenv("LPCLIQUE_SEARCH_WORKERS", "6")
	t.Setenv("LPCLIQUE_SOLVER_TOLERANCE", "1e-8")
	t.Setenv("LPCLIQUE_LOG_MAX_AGE", "30")

	cfg, err := config.NewLoader(config.WithFile(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Search.TimeLimit)
	assert.True(t, cfg.Search.GreedySeed)
	assert.Equal(t, 6, cfg.Search.Workers) // env beats file
	assert.Equal(t, 1e-8, cfg.Solver.Tolerance)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
	assert.Equal(t, 30, cfg.Log.MaxAge)
}

func TestLoad_ConfigEnvVar(t *testing.T) {
	path := writeYAML(t, "metrics:\n  enabled: true\n  addr: \":9999\"\n")
	t.Setenv("LPCLIQUE_CONFIG", path)

	cfg, err := config.NewLoader(config.WithSearchPaths()).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
}

func TestLoad_SearchPath(t *testing.T) {
	path := writeYAML(t, "search:\n  time_limit: 5m\n")
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := config.NewLoader(config.WithSearchPaths(missing, path)).Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Search.TimeLimit)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.NewLoader(config.WithFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	assert.Error(t, err)

	tests := []struct {
		name string
		yaml string
	}{
		{"ZeroWorkers", "search:\n  workers: 0\n"},
		{"NegativeLimit", "search:\n  time_limit: -1s\n"},
		{"HugeEpsilon", "search:\n  epsilon: 0.7\n"},
		{"ZeroTolerance", "solver:\n  tolerance: 0\n"},
		{"BadLevel", "log:\n  level: loud\n"},
		{"BadFormat", "log:\n  format: xml\n"},
		{"BadOutput", "log:\n  output: syslog\n"},
		{"MetricsNoAddr", "metrics:\n  enabled: true\n  addr: \"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.NewLoader(config.WithFile(writeYAML(t, tc.yaml))).Load()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CLQ_SEARCH_GREEDY_SEED", "true")
	cfg, err := config.NewLoader(config.WithSearchPaths(), config.WithEnvPrefix("CLQ_")).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.GreedySeed)
}
