package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5000, cfg.Stars.Count)
	assert.Equal(t, 1000.0, cfg.Stars.Radius)
	assert.Equal(t, 30.0, cfg.Pick.Tolerance)
	assert.Equal(t, 2000, cfg.Constellation.MaxEdges)
	assert.Equal(t, "My Constellation", cfg.Constellation.Name)
	assert.Nil(t, cfg.Stars.Seed)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
stars:
  count: 120
  seed: 7
constellation:
  max_edges: 3
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Stars.Count)
	require.NotNil(t, cfg.Stars.Seed)
	assert.Equal(t, uint64(7), *cfg.Stars.Seed)
	assert.Equal(t, 3, cfg.Constellation.MaxEdges)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched sections keep their defaults
	assert.Equal(t, 1000.0, cfg.Stars.Radius)
	assert.Equal(t, 30.0, cfg.Pick.Tolerance)
	assert.Equal(t, 60.0, cfg.Camera.FOV)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "stars: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"negative count", func(c *Config) { c.Stars.Count = -1 }, "stars.count: must be at least 0"},
		{"zero radius", func(c *Config) { c.Stars.Radius = 0 }, "stars.radius: must be greater than 0"},
		{"huge tolerance", func(c *Config) { c.Pick.Tolerance = 1000 }, "pick.tolerance: must not exceed 500"},
		{"no edges", func(c *Config) { c.Constellation.MaxEdges = 0 }, "constellation.max_edges: must be at least 1"},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, "camera.fov: must be less than 180"},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "log.level: must be one of [debug info warn error]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.EqualError(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeFile(t, "pick:\n  tolerance: -5\n"))
	assert.ErrorContains(t, err, "pick.tolerance: must be greater than 0")
}
