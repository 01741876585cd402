package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestColliderHalf(t *testing.T) {
	hw, hh := Default().Obstacles.ColliderHalf()
	if hw != 20 || hh != 295 {
		t.Errorf("ColliderHalf() = (%g, %g), expected (20, 295)", hw, hh)
	}
}

func TestLoadCustomYAMLOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: -500\nobstacles:\n  gap: 140\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != -500 {
		t.Errorf("Gravity = %g, expected -500", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 140 {
		t.Errorf("Gap = %g, expected 140", cfg.Obstacles.Gap)
	}
	if cfg.Physics.FlapSpeed != Default().Physics.FlapSpeed {
		t.Errorf("unset FlapSpeed should keep default, got %g", cfg.Physics.FlapSpeed)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[physics]\nflap_speed = 200.0\n\n[bounds]\ntop = 250.0\nbottom = -250.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.FlapSpeed != 200 {
		t.Errorf("FlapSpeed = %g, expected 200", cfg.Physics.FlapSpeed)
	}
	if cfg.Bounds.Top != 250 || cfg.Bounds.Bottom != -250 {
		t.Errorf("Bounds = %+v, expected top 250 bottom -250", cfg.Bounds)
	}
	if cfg.Physics.Gravity != Default().Physics.Gravity {
		t.Errorf("unset Gravity should keep default, got %g", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry package prefix, got %q", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "obstacles:\n  collider_inset: 30\n  spawn_interval: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"collider inset", "spawn_interval"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestLoadInvertedPhysics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	data := "physics:\n  gravity: 350\n  flap_speed: -150\n  scroll_speed: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for inverted physics")
	}
	msg := err.Error()
	for _, want := range []string{"gravity", "flap_speed", "scroll_speed"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero actor half width", func(c *Config) { c.Actor.HalfW = 0 }},
		{"inverted gap range", func(c *Config) { c.Obstacles.GapCenterMin = 200 }},
		{"non-positive lifetime", func(c *Config) { c.Obstacles.Lifetime = 0 }},
		{"inverted bounds", func(c *Config) { c.Bounds.Top = -400 }},
		{"negative max dt", func(c *Config) { c.Timing.MaxDT = -1 }},
		{"zero gap", func(c *Config) { c.Obstacles.Gap = 0 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = 350 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"negative flap speed", func(c *Config) { c.Physics.FlapSpeed = -150 }},
		{"zero flap speed", func(c *Config) { c.Physics.FlapSpeed = 0 }},
		{"zero scroll speed", func(c *Config) { c.Physics.ScrollSpeed = 0 }},
		{"rightward scroll", func(c *Config) { c.Physics.ScrollSpeed = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(Default(), format)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			cfg, err := Parse(data, format)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if cfg != Default() {
				t.Errorf("round trip changed config: %+v", cfg)
			}
		})
	}

	if _, err := Marshal(Default(), "ini"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
