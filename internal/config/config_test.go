package config

import (
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.MonthsBack != 4 {
		t.Errorf("MonthsBack = %d, want 4", cfg.General.MonthsBack)
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.LogPath = "/data/studytime.csv"
	cfg.General.MonthsBack = 6

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.LogPath != cfg.General.LogPath {
		t.Errorf("LogPath = %q, want %q", got.General.LogPath, cfg.General.LogPath)
	}
	if got.General.MonthsBack != 6 {
		t.Errorf("MonthsBack = %d, want 6", got.General.MonthsBack)
	}
	if got.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", got.Appearance.Theme)
	}
}
