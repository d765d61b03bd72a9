package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	settings, err := config.Load("breakout", []string{"-env", ""}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, breakout.DefaultConfig(), settings.Game)
	assert.False(t, settings.Debug)
	assert.Equal(t, slog.LevelInfo, settings.LogLevel)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	_, err := config.Load("breakout", []string{"-env", missing}, noEnv)
	assert.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "breakout.toml", `
debug = true
log_level = "debug"

[game]
variant = "classic"
brick_rows = 5
window_width = 450
window_height = 545
`)

	settings, err := config.Load("breakout", []string{"-config", path, "-env", ""}, noEnv)
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.Equal(t, slog.LevelDebug, settings.LogLevel)
	assert.Equal(t, breakout.Classic, settings.Game.Variant)
	assert.Equal(t, 5, settings.Game.BrickRows)
	assert.Equal(t, 10, settings.Game.BrickCols, "unset keys keep their defaults")
	assert.Equal(t, 450.0, settings.Game.Width())
	assert.Equal(t, 545.0, settings.Game.Height())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := config.Load("breakout", []string{"-config", filepath.Join(t.TempDir(), "missing.toml"), "-env", ""}, noEnv)
	assert.ErrorContains(t, err, "reading config")

	bad := writeFile(t, "bad.toml", "[game\n")
	_, err = config.Load("breakout", []string{"-config", bad, "-env", ""}, noEnv)
	assert.ErrorContains(t, err, "reading config")

	unknown := writeFile(t, "unknown.toml", "[game]\nbrick_colour = \"red\"\n")
	_, err = config.Load("breakout", []string{"-config", unknown, "-env", ""}, noEnv)
	assert.ErrorContains(t, err, "game.brick_colour")

	invalid := writeFile(t, "invalid.toml", "[game]\nlives = 0\n")
	_, err = config.Load("breakout", []string{"-config", invalid, "-env", ""}, noEnv)
	assert.ErrorIs(t, err, breakout.ErrInvalidConfig)
}

func TestPrecedence(t *testing.T) {
	path := writeFile(t, "breakout.toml", "[game]\nlives = 1\nseed = 1\nvariant = \"classic\"\n")
	envFile := writeFile(t, ".env", "BREAKOUT_LIVES=2\nBREAKOUT_SEED=2\nOTHER=ignored\n")

	settings, err := config.Load("breakout",
		[]string{"-config", path, "-env", envFile, "-seed", "9"},
		envMap(map[string]string{"BREAKOUT_SEED": "3", "BREAKOUT_LOG_LEVEL": "warn"}),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, settings.Game.Lives, "env file beats config file")
	assert.Equal(t, uint64(9), settings.Game.Seed, "flag beats environment")
	assert.Equal(t, breakout.Classic, settings.Game.Variant)
	assert.Equal(t, slog.LevelWarn, settings.LogLevel)
}

func TestEnvironmentErrors(t *testing.T) {
	_, err := config.Load("breakout", []string{"-env", ""}, envMap(map[string]string{"BREAKOUT_LIVES": "three"}))
	assert.ErrorContains(t, err, "BREAKOUT_LIVES")

	_, err = config.Load("breakout", []string{"-env", ""}, envMap(map[string]string{"BREAKOUT_VARIANT": "arcade"}))
	assert.ErrorIs(t, err, breakout.ErrInvalidConfig)
}

func TestFlags(t *testing.T) {
	settings, err := config.Load("breakout", []string{"-env", "", "-variant", "classic", "-debug", "-log-level", "error"}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, breakout.Classic, settings.Game.Variant)
	assert.True(t, settings.Debug)
	assert.Equal(t, slog.LevelError, settings.LogLevel)

	_, err = config.Load("breakout", []string{"-env", "", "-log-level", "loud"}, noEnv)
	assert.ErrorContains(t, err, "flags")

	_, err = config.Load("breakout", []string{"-bogus"}, noEnv)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "lives", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown lives=2")
}
