package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestPresetsValidate verifies every preset is usable as shipped
func TestPresetsValidate(t *testing.T) {
	for _, name := range Presets() {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if cfg.Preset != name {
			t.Errorf("preset %q reports name %q", name, cfg.Preset)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", name, err)
		}
	}
}

func TestDefaultIsMolten(t *testing.T) {
	cfg := Default()
	if cfg.Preset != "molten" {
		t.Fatalf("expected molten default, got %q", cfg.Preset)
	}
	if cfg.Dark.Motion != MotionFlow || cfg.Light.Motion != MotionFluid {
		t.Errorf("unexpected motions dark=%s light=%s", cfg.Dark.Motion, cfg.Light.Motion)
	}
	if cfg.Light.Fluid.Viscosity != 0.92 {
		t.Errorf("expected viscosity 0.92, got %v", cfg.Light.Fluid.Viscosity)
	}
	if cfg.Ease != 0.2 {
		t.Errorf("expected ease 0.2, got %v", cfg.Ease)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := Preset("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"no particles":  func(c *Config) { c.Particles = 0 },
		"ease too big":  func(c *Config) { c.Ease = 1.5 },
		"bad theme":     func(c *Config) { c.Theme = "sepia" },
		"bad motion":    func(c *Config) { c.Dark.Motion = "orbit" },
		"bad bounds":    func(c *Config) { c.Light.Bounds = "clip" },
		"empty palette": func(c *Config) { c.Dark.Palette = nil },
		"bad color":     func(c *Config) { c.Dark.Palette = []string{"blue"} },
		"short fluid":   func(c *Config) { c.Light.Palette = []string{"#ffffff"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Error("toggle should swap dark and light")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Preset("swarm")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Particles = 42
	cfg.Theme = ThemeLight
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Particles != 42 || got.Theme != ThemeLight || got.Preset != "swarm" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.Light.Palette) != len(cfg.Light.Palette) {
		t.Errorf("palette length %d, want %d", len(got.Light.Palette), len(cfg.Light.Palette))
	}
}

func TestLoadPartialUsesNamedPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"preset":"antigravity","cursor_radius":90}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CursorRadius != 90 {
		t.Errorf("expected cursor radius 90, got %v", cfg.CursorRadius)
	}
	if cfg.Particles != 150 || cfg.Dark.Motion != MotionHome {
		t.Errorf("missing fields should come from the antigravity preset, got %d %s", cfg.Particles, cfg.Dark.Motion)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProfileHref(t *testing.T) {
	p := Profile{URLs: map[string]string{"Music": "https://example.com/music", "Contact": ""}}
	tests := []struct {
		label, want string
	}{
		{"Music", "https://example.com/music"},
		{"Contact", "Contact"},
		{"Portfolio", "Portfolio"},
	}
	for _, tt := range tests {
		if got := p.Href(tt.label); got != tt.want {
			t.Errorf("Href(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
