package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("POUND_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.QuitTimes != 3 || cfg.Theme != "default" || !cfg.WatchFile {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveThenLoadRoundTripsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pound", "settings.json")
	t.Setenv("POUND_CONFIG", path)

	cfg := Default()
	cfg.QuitTimes = 1
	cfg.Theme = "monokai"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.QuitTimes != 1 || got.GetTheme().Name != "Monokai" {
		t.Fatalf("expected overrides to survive, got %+v", got)
	}
}

func TestLoadPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv("POUND_CONFIG", path)
	if err := os.WriteFile(path, []byte(`{"quit_times": 5}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.QuitTimes != 5 {
		t.Fatalf("expected quit_times=5, got %d", cfg.QuitTimes)
	}
	if cfg.MessageTTL() != 5*time.Second || cfg.KeyPollInterval() != 500*time.Millisecond {
		t.Fatalf("expected default timings, got ttl=%v poll=%v", cfg.MessageTTL(), cfg.KeyPollInterval())
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv("POUND_CONFIG", path)
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGetThemeFallsBackToDefault(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	if got := cfg.GetTheme(); got != Themes["default"] {
		t.Fatalf("expected default theme fallback, got %+v", got)
	}
}

func TestLoadOrCreateWritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pound", "settings.json")
	t.Setenv("POUND_CONFIG", path)

	cfg, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	if cfg.QuitTimes != 3 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be written: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"quit_times": 5}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err = LoadOrCreate()
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if cfg.QuitTimes != 5 {
		t.Fatalf("existing settings were not read, got %+v", cfg)
	}
}
