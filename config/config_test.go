package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "booster.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want, cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, `
fps = 30
color = "256"
hold = "5s"
countdown-seconds = 3
`)

	// file > default
	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "256", cfg.Color)
	assert.Equal(t, 5*time.Second, cfg.Hold)
	assert.Equal(t, 3, cfg.CountdownSeconds)
	assert.Equal(t, path, cfg.File)

	// env > file
	t.Setenv("BOOSTER_FPS", "40")
	t.Setenv("BOOSTER_COUNTDOWN_SECONDS", "2")
	cfg, err = Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.FPS)
	assert.Equal(t, 2, cfg.CountdownSeconds)
	assert.Equal(t, "256", cfg.Color)

	// flag > env
	cfg, err = Load([]string{"--config", path, "--fps", "50"})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.FPS)
	assert.Equal(t, 2, cfg.CountdownSeconds)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	path := writeFile(t, `headless = true`)
	t.Setenv("BOOSTER_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.Headless)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][]string{
		"fps too low":    {"--fps", "0"},
		"fps too high":   {"--fps", "5000"},
		"unknown color":  {"--color", "sepia"},
		"negative hold":  {"--hold=-1s"},
		"headless every": {"--headless-every", "0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadUnknownFlag(t *testing.T) {
	_, err := Load([]string{"--warp-speed"})
	assert.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	cfg := Default()
	cfg.FPS = 60
	cfg.Color = "mono"
	cfg.Audio = false
	cfg.Hold = 1500 * time.Millisecond
	cfg.MetricsAddr = "127.0.0.1:9100"

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load([]string{"--config", path})
	require.NoError(t, err)

	cfg.File = path
	assert.Equal(t, cfg, loaded)
}
