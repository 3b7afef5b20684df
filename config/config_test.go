package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 3, cfg.Session.MaxHealth)
	assert.Equal(t, 50, cfg.Session.StartingAmmo)
	assert.False(t, cfg.Session.NoClip)
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.6, cfg.Audio.Volume, 1e-9)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Input.HoldWindow)
	assert.Equal(t, time.Second/60, cfg.TickInterval())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, "corridor.json", `{
		"logLevel": "debug",
		"seed": 1234,
		"session": { "maxHealth": 5, "noClip": true },
		"audio": { "enabled": false }
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 5, cfg.Session.MaxHealth)
	assert.Equal(t, 50, cfg.Session.StartingAmmo, "unset keys keep defaults")
	assert.True(t, cfg.Session.NoClip)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "corridor.yaml", "tickRate: 30\nsession:\n  startingAmmo: 10\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 10, cfg.Session.StartingAmmo)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CORRIDOR_LOGLEVEL", "warn")
	t.Setenv("CORRIDOR_SESSION_STARTINGAMMO", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7, cfg.Session.StartingAmmo)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "corridor.json", `{"tickRate": 0, "session": {"maxHealth": -1}}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tickRate")
	assert.Contains(t, err.Error(), "session.maxHealth")
}

func TestValidate_Volume(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 1.5
	assert.Error(t, cfg.Validate())
}

func TestLoad_HoldWindow(t *testing.T) {
	path := writeConfig(t, "corridor.yaml", "input:\n  holdWindow: 650ms\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 650*time.Millisecond, cfg.Input.HoldWindow)

	t.Setenv("CORRIDOR_INPUT_HOLDWINDOW", "300ms")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Input.HoldWindow)

	cfg.Input.HoldWindow = 0
	assert.Error(t, cfg.Validate())
}
