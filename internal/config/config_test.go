package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRepositoryConfig(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.GetTileWidth())
	assert.Equal(t, 32, cfg.GetTileHeight())
	assert.Equal(t, 30, cfg.GetIterationLimit())
	assert.Equal(t, 320.0, cfg.GetActivationRadius())
	assert.Equal(t, 1.0, cfg.GetAttackDelay())
	assert.Same(t, cfg, GlobalConfig)
}

func TestDefaultsWhenUnset(t *testing.T) {
	cfg, err := ParseConfig([]byte("display:\n  window_title: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.GetScreenWidth())
	assert.Equal(t, 60, cfg.GetTPS())
	assert.Equal(t, DefaultIterationLimit, cfg.GetIterationLimit())
	assert.Equal(t, DefaultPathfindingRate, cfg.GetPathfindingRate())
	assert.Equal(t, DefaultPathfindingRateOffset, cfg.GetPathfindingRateOffset())
	assert.Equal(t, 10.0, cfg.GetPowerupDuration())
	assert.Equal(t, [4]float64{0.05, 0.05, 0.05, 0.05}, cfg.GetPowerupBands())
	assert.Equal(t, "assets/mobs.yaml", cfg.GetMobsPath())
}

func TestExplicitZeroIterationLimit(t *testing.T) {
	cfg, err := ParseConfig([]byte("mob_ai:\n  iteration_limit: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.GetIterationLimit())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mob_ai: [unterminated"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  tile_width: 32\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored: true\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("world:\n  tile_width: 16\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case name := <-w.Events:
		assert.Equal(t, abs, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event for config write")
	}
}
