package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Timing.BaseIntervalMs != 800 {
		t.Errorf("BaseIntervalMs = %d, want 800", cfg.Timing.BaseIntervalMs)
	}
	if cfg.Timing.SpeedFactor != 0.9 {
		t.Errorf("SpeedFactor = %f, want 0.9", cfg.Timing.SpeedFactor)
	}
	if cfg.BaseInterval() != 800*time.Millisecond {
		t.Errorf("BaseInterval() = %v, want 800ms", cfg.BaseInterval())
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no user/local configs expected in the test
	// environment the embedded YAML must parse and match the hardcoded
	// defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Timing.BaseIntervalMs <= 0 || cfg.Timing.SpeedFactor <= 0 {
		t.Errorf("embedded default produced unusable timing: %+v", cfg.Timing)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("timing:\n  base_interval_ms: 500\n  speed_factor: 0.8\ndisplay:\n  show_next: false\n  show_ghost: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Timing.BaseIntervalMs != 500 {
		t.Errorf("BaseIntervalMs = %d, want 500", cfg.Timing.BaseIntervalMs)
	}
	if cfg.Display.ShowNext {
		t.Error("ShowNext should be false")
	}
	if !cfg.Display.ShowGhost {
		t.Error("ShowGhost should be true")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path should error")
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	cfg := Config{Timing: TimingConfig{BaseIntervalMs: -5, SpeedFactor: 1.5}}
	cfg.Normalize()

	def := Default()
	if cfg.Timing.BaseIntervalMs != def.Timing.BaseIntervalMs {
		t.Errorf("BaseIntervalMs = %d, want default %d", cfg.Timing.BaseIntervalMs, def.Timing.BaseIntervalMs)
	}
	if cfg.Timing.SpeedFactor != def.Timing.SpeedFactor {
		t.Errorf("SpeedFactor = %f, want default %f", cfg.Timing.SpeedFactor, def.Timing.SpeedFactor)
	}
}
