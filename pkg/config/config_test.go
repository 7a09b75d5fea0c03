package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qnkhuat/netchess/pkg/gui"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Player.Name == "" {
		t.Fatal("default player name is empty")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netchess.yaml")
	data := []byte(`
network:
  address: 0.0.0.0:5000
  retry_backoff: 1s
  max_attempts: 3
frame_rate: 60
player:
  name: carlsen
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Network.Address != "0.0.0.0:5000" {
		t.Errorf("Address = %q", cfg.Network.Address)
	}
	if cfg.Network.RetryBackoff != time.Second {
		t.Errorf("RetryBackoff = %s, want 1s", cfg.Network.RetryBackoff)
	}
	if cfg.Network.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Network.MaxAttempts)
	}
	if cfg.FrameRate != 60 {
		t.Errorf("FrameRate = %d, want 60", cfg.FrameRate)
	}
	if cfg.Player.Name != "carlsen" {
		t.Errorf("Player.Name = %q", cfg.Player.Name)
	}
	if cfg.Log.Path != DefaultLogPath {
		t.Errorf("Log.Path = %q, want the default", cfg.Log.Path)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Network.Address != DefaultAddress {
		t.Fatalf("Address = %q, want %q", cfg.Network.Address, DefaultAddress)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"address without port", func(c *Config) { c.Network.Address = "localhost" }},
		{"zero backoff", func(c *Config) { c.Network.RetryBackoff = 0 }},
		{"negative attempts", func(c *Config) { c.Network.MaxAttempts = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"blank name", func(c *Config) { c.Player.Name = "  " }},
		{"inverted port range", func(c *Config) { c.SSH.PortFirst, c.SSH.PortLast = 10, 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("network: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadCustomTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netchess.yaml")
	data := []byte(`
theme: midnight
themes:
  - name: midnight
    squareDark: "#1c1c3c"
    squareLight: "#5f5f87"
    moveLabelFg: white
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Themes) != 1 || cfg.Themes[0].SquareDark != "#1c1c3c" || cfg.Themes[0].MoveLabelFg != "white" {
		t.Fatalf("Themes = %+v", cfg.Themes)
	}
}

func TestValidateUnknownTheme(t *testing.T) {
	cfg := Default()
	cfg.Theme = "midnight"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	cfg.Themes = []gui.ThemeHex{{Name: "midnight"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with the theme configured = %v", err)
	}
}
