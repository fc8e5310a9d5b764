package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 1000, cfg.MaxProcesses)
	assert.Equal(t, 1000000, cfg.MaxTime)
	assert.False(t, cfg.UnitIdleSteps)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, int64(1<<20), cfg.CacheMaxCost)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "port: 8081\nscheduler:\n  max_processes: 50\n  max_time: 500\n  unit_idle_steps: true\ncache:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("SJF_PORT", "9999")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 50, cfg.MaxProcesses)
	assert.Equal(t, 500, cfg.MaxTime)
	assert.True(t, cfg.UnitIdleSteps)
	assert.False(t, cfg.CacheEnabled)
}
