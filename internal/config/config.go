// Package config loads chilli's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "chilli"

// Defaults for optional settings.
const (
	DefaultVolume     = 0.8
	DefaultSeekStep   = 5 * time.Second
	DefaultVolumeStep = 0.05
	DefaultLogLevel   = "info"
)

type Config struct {
	CatalogPath string `koanf:"catalog_path"` // index JSON; empty uses the bundled catalog
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"

	Player        PlayerConfig        `koanf:"player"`
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Log           LogConfig           `koanf:"log"`
}

// PlayerConfig holds the local presentation defaults of player surfaces.
type PlayerConfig struct {
	Volume     *float64 `koanf:"volume"`      // 0.0-1.0 (default: 0.8)
	SeekStep   float64  `koanf:"seek_step"`   // seconds (default: 5)
	VolumeStep float64  `koanf:"volume_step"` // (default: 0.05)
}

// NotificationsConfig controls desktop "now playing" notifications.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// MPRISConfig controls the D-Bus media remote.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig controls the log file used by the terminal UI.
type LogConfig struct {
	Level string `koanf:"level"` // trace, debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/chilli/chilli.log
}

// Load reads the default config locations, then explicitPath if set.
// Later files override earlier ones. Default locations are optional; an
// explicit path must exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if explicitPath != "" {
		path := expandPath(explicitPath)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.CatalogPath != "" {
		cfg.CatalogPath = expandPath(cfg.CatalogPath)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that cannot be clamped into something sensible.
func (c *Config) Validate() error {
	var errs []error
	switch c.Icons {
	case "", "nerd", "unicode", "none":
	default:
		errs = append(errs, fmt.Errorf("icons: unknown style %q", c.Icons))
	}
	if v := c.Player.Volume; v != nil && (*v < 0 || *v > 1) {
		errs = append(errs, fmt.Errorf("player.volume: %v out of range [0, 1]", *v))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/chilli/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Volume returns the initial volume with the default applied.
func (c *Config) Volume() float64 {
	if c.Player.Volume == nil {
		return DefaultVolume
	}
	return *c.Player.Volume
}

// SeekStep returns the seek increment with the default applied.
func (c *Config) SeekStep() time.Duration {
	if c.Player.SeekStep <= 0 {
		return DefaultSeekStep
	}
	return time.Duration(c.Player.SeekStep * float64(time.Second))
}

// VolumeStep returns the volume increment with the default applied.
func (c *Config) VolumeStep() float64 {
	if c.Player.VolumeStep <= 0 || c.Player.VolumeStep > 1 {
		return DefaultVolumeStep
	}
	return c.Player.VolumeStep
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// MPRISEnabled reports whether the MPRIS remote is on.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// LogLevel returns the configured level name with the default applied.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Log.Level)
}

// LogFile returns the log file path, resolving the XDG state default.
// The parent directory is created when the default is used.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
