package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Title != "Total Solar Radiation" {
		t.Errorf("expected default title, got %s", cfg.Title)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("canvas dimensions should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Points != 480 || cfg.Bins != 480 {
		t.Errorf("expected 480 points and bins, got %d and %d", cfg.Points, cfg.Bins)
	}
	if cfg.Layers != 22 {
		t.Errorf("expected 22 layers, got %d", cfg.Layers)
	}
	if cfg.TransitionDuration >= cfg.SwitchInterval {
		t.Error("transition should settle before the next switch")
	}
	if cfg.Theme != "classic" {
		t.Errorf("expected classic theme, got %s", cfg.Theme)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Points != 720 {
		t.Errorf("expected 720 points, got %d", cfg.Points)
	}
	if cfg.Width <= 0 || cfg.FPS <= 0 {
		t.Error("preset should be a complete runnable config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected built-in presets")
	}
	for _, name := range presets {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %s not retrievable", name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radviz.yaml")

	want := DefaultConfig()
	want.Points = 300
	want.Theme = "ember"
	want.Sonify = true

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("points: 100\ntheme: mono\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Points != 100 || cfg.Theme != "mono" {
		t.Errorf("expected overrides applied, got points=%d theme=%s", cfg.Points, cfg.Theme)
	}
	if cfg.Width != DefaultWidth || cfg.Layers != DefaultLayers {
		t.Errorf("expected defaults retained, got width=%d layers=%d", cfg.Width, cfg.Layers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
