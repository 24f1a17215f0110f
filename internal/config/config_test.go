package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
backend = "caffeinate"
blocked_glyph = "☕️"
notification_delay = "250ms"
notifications = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "caffeinate", cfg.Backend)
	assert.Equal(t, "☕️", cfg.BlockedGlyph)
	assert.Equal(t, "😴", cfg.AllowedGlyph, "unset keys keep their defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.NotificationDelay.Duration)
	assert.False(t, cfg.Notifications)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `notification_delay = "soon"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty glyph", body: `allowed_glyph = ""`},
		{name: "same glyphs", body: `blocked_glyph = "😴"`},
		{name: "negative delay", body: `notification_delay = "-1s"`},
		{name: "malformed toml", body: `backend = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestPathHonoursEnvironment(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("DARKCIRCLES_CONFIG_PATH", custom)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, custom, path)
}

func TestLoadEmptyPathUsesEnvironment(t *testing.T) {
	t.Setenv("DARKCIRCLES_CONFIG_PATH", writeConfig(t, `tooltip = "awake?"`))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "awake?", cfg.Tooltip)
}
