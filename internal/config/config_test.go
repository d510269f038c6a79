//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

// isolate points XDG dirs and the working directory at empty temp dirs.
func isolate(t *testing.T) (configHome, workDir string) {
	t.Helper()
	configHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	workDir = t.TempDir()
	t.Chdir(workDir)
	return configHome, workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/data/chilli/index.json",
			expected: filepath.Join(home, "data", "chilli", "index.json"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/chilli/index.json",
			expected: "/srv/chilli/index.json",
		},
		{
			name:     "relative path unchanged",
			input:    "data/index.json",
			expected: "data/index.json",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	configHome, _ := isolate(t)
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() = %v, want 2 paths", paths)
	}
	if want := filepath.Join(configHome, "chilli", "config.toml"); paths[0] != want {
		t.Errorf("first config path = %q, want %q", paths[0], want)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}
	if cfg.Volume() != DefaultVolume {
		t.Errorf("Volume() = %v, want %v", cfg.Volume(), DefaultVolume)
	}
	if cfg.SeekStep() != DefaultSeekStep {
		t.Errorf("SeekStep() = %v, want %v", cfg.SeekStep(), DefaultSeekStep)
	}
	if cfg.VolumeStep() != DefaultVolumeStep {
		t.Errorf("VolumeStep() = %v, want %v", cfg.VolumeStep(), DefaultVolumeStep)
	}
	if !cfg.NotificationsEnabled() || !cfg.MPRISEnabled() {
		t.Error("notifications and MPRIS should default to enabled")
	}
	if cfg.LogLevel() != "info" {
		t.Errorf("LogLevel() = %q, want info", cfg.LogLevel())
	}
}

func TestLoad_LocalOverridesXDG(t *testing.T) {
	configHome, workDir := isolate(t)

	writeFile(t, filepath.Join(configHome, "chilli", "config.toml"), `
icons = "unicode"
catalog_path = "/srv/catalog.json"

[player]
volume = 0.5
`)
	writeFile(t, filepath.Join(workDir, "config.toml"), `
icons = "none"

[notifications]
enabled = false
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "none" {
		t.Errorf("Icons = %q, want none (local wins)", cfg.Icons)
	}
	if cfg.CatalogPath != "/srv/catalog.json" {
		t.Errorf("CatalogPath = %q, want value from XDG file", cfg.CatalogPath)
	}
	if cfg.Volume() != 0.5 {
		t.Errorf("Volume() = %v, want 0.5", cfg.Volume())
	}
	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true, want false")
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = false, want default true")
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	_, workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "config.toml"), `icons = "none"`)

	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, `
icons = "nerd"

[player]
seek_step = 10
volume_step = 0.1

[log]
level = "DEBUG"
file = "/tmp/chilli-test.log"
`)

	cfg, err := Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want nerd", cfg.Icons)
	}
	if cfg.SeekStep() != 10*time.Second {
		t.Errorf("SeekStep() = %v, want 10s", cfg.SeekStep())
	}
	if cfg.VolumeStep() != 0.1 {
		t.Errorf("VolumeStep() = %v, want 0.1", cfg.VolumeStep())
	}
	if cfg.LogLevel() != "debug" {
		t.Errorf("LogLevel() = %q, want debug", cfg.LogLevel())
	}
	if path, err := cfg.LogFile(); err != nil || path != "/tmp/chilli-test.log" {
		t.Errorf("LogFile() = %q, %v", path, err)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load() with a missing explicit path should fail")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "config.toml"), `icons = `)

	if _, err := Load(""); err == nil {
		t.Fatal("Load() with invalid TOML should fail")
	}
}

func TestValidate(t *testing.T) {
	vol := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"known icons", Config{Icons: "unicode"}, false},
		{"unknown icons", Config{Icons: "emoji"}, true},
		{"volume in range", Config{Player: PlayerConfig{Volume: vol(1)}}, false},
		{"volume too high", Config{Player: PlayerConfig{Volume: vol(1.5)}}, true},
		{"volume negative", Config{Player: PlayerConfig{Volume: vol(-0.1)}}, true},
		{"unknown level", Config{Log: LogConfig{Level: "verbose"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogFile_DefaultUnderStateHome(t *testing.T) {
	isolate(t)
	cfg := Config{}

	path, err := cfg.LogFile()
	if err != nil {
		t.Fatalf("LogFile() error = %v", err)
	}
	if want := filepath.Join(xdg.StateHome, "chilli", "chilli.log"); path != want {
		t.Errorf("LogFile() = %q, want %q", path, want)
	}
}

func TestVolumeStep_OutOfRangeFallsBack(t *testing.T) {
	cfg := Config{Player: PlayerConfig{VolumeStep: 3}}
	if cfg.VolumeStep() != DefaultVolumeStep {
		t.Errorf("VolumeStep() = %v, want default", cfg.VolumeStep())
	}
}
