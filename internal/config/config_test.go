package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "nform.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
lenient = true
jobs = 3
color = "OFF"

[log]
level = "debug"
sections = ["frontend"]
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.True(t, cfg.Lenient)
	assert.False(t, cfg.Verify)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, ColorOff, cfg.Color)
	assert.Equal(t, []string{"frontend"}, cfg.Log.Sections)

	level, err := cfg.Log.SlogLevel()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadKeepsUnsetDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `verify = true`))
	assert.NoError(t, err)
	assert.True(t, cfg.Verify)
	assert.Equal(t, Default().Jobs, cfg.Jobs)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "lenient = true\nstrictness = 2\n"))
	assert.ErrorContains(t, err, "unknown keys strictness")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, `jobs = 0`))
	assert.ErrorContains(t, err, "jobs must be at least 1")

	_, err = Load(writeConfig(t, `color = "sometimes"`))
	assert.ErrorContains(t, err, "unknown color mode")

	_, err = Load(writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
