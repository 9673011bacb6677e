package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "exchange" {
		t.Errorf("expected algorithm exchange, got %s", cfg.Algorithm)
	}
	if cfg.Size != 52 {
		t.Errorf("expected size 52, got %d", cfg.Size)
	}
	if cfg.Trials <= 0 {
		t.Error("trials should be positive")
	}
	if cfg.Playback.IntervalMs <= 0 {
		t.Error("playback interval should be positive")
	}
	if cfg.Playback.Speed < MinSpeed || cfg.Playback.Speed > MaxSpeed {
		t.Errorf("default speed %f outside [%f, %f]", cfg.Playback.Speed, MinSpeed, MaxSpeed)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "riffle"
	cfg.Size = 26
	cfg.Seed = 1234
	cfg.Playback.Speed = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Algorithm != "riffle" || loaded.Size != 26 || loaded.Seed != 1234 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Playback.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", loaded.Playback.Speed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("riffle", "casino")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Trials != 7 {
		t.Errorf("expected 7 trials, got %d", cfg.Trials)
	}
	if cfg.Playback.IntervalMs == 0 || cfg.Playback.Speed == 0 {
		t.Error("preset playback defaults not filled in")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("riffle", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "quick"); cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("exchange"); len(presets) == 0 {
		t.Error("expected presets for exchange")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.5},
		{0.5, 0.5},
		{1.7, 1.7},
		{3.0, 3.0},
		{9.9, 3.0},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
