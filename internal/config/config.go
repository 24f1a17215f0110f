package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	configDirName  = "darkcircles"
	configFileName = "config.toml"
)

// Config holds the presentation and backend settings. The sleep toggle
// itself is never persisted.
type Config struct {
	Backend           string   `toml:"backend"`
	Reason            string   `toml:"reason"`
	AllowedGlyph      string   `toml:"allowed_glyph"`
	BlockedGlyph      string   `toml:"blocked_glyph"`
	Tooltip           string   `toml:"tooltip"`
	NotificationTitle string   `toml:"notification_title"`
	NotificationDelay Duration `toml:"notification_delay"`
	Notifications     bool     `toml:"notifications"`
	Debug             bool     `toml:"debug"`
}

// Duration decodes Go duration strings such as "1s" or "750ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:           "auto",
		Reason:            "Dark Circles is keeping this Mac awake",
		AllowedGlyph:      "😴",
		BlockedGlyph:      "👀",
		Tooltip:           "Dark Circles",
		NotificationTitle: "Dark Circles",
		NotificationDelay: Duration{time.Second},
		Notifications:     true,
	}
}

// Path returns the resolved configuration file path.
func Path() (string, error) {
	if custom := strings.TrimSpace(os.Getenv("DARKCIRCLES_CONFIG_PATH")); custom != "" {
		return custom, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the TOML file at path, or at Path() when path is empty. Keys
// missing from the file keep their defaults; a missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		resolved, err := Path()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings the tray cannot work without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AllowedGlyph) == "" {
		return errors.New("allowed_glyph must not be empty")
	}
	if strings.TrimSpace(c.BlockedGlyph) == "" {
		return errors.New("blocked_glyph must not be empty")
	}
	if c.AllowedGlyph == c.BlockedGlyph {
		return errors.New("allowed_glyph and blocked_glyph must differ")
	}
	if c.NotificationDelay.Duration < 0 {
		return fmt.Errorf("notification_delay must not be negative, got %s", c.NotificationDelay)
	}
	return nil
}
