package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if cfg.DayStart != "08:00" || cfg.DayEnd != "20:00" {
		t.Errorf("default window = %s-%s", cfg.DayStart, cfg.DayEnd)
	}
	if cfg.DefaultDurationMin != 60 {
		t.Errorf("default duration = %d", cfg.DefaultDurationMin)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("first run should write the default config: %v", err)
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.yaml")

	want := &Config{
		DayStart:           "07:30",
		DayEnd:             "21:00",
		DefaultDurationMin: 45,
		Timezone:           "Europe/Berlin",
		StorePath:          "/tmp/daybook.db",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config perms = %v, want 0600", info.Mode().Perm())
	}
}

func TestNormalize_FillsMissingValues(t *testing.T) {
	cfg := &Config{DayStart: "09:00"}
	cfg.Normalize()
	if cfg.DayEnd != "20:00" || cfg.DefaultDurationMin != 60 || cfg.Timezone != "Local" {
		t.Errorf("normalized config = %+v", cfg)
	}
	if cfg.DayStart != "09:00" {
		t.Errorf("normalize overwrote an explicit value")
	}
}

func TestLoad_EmptyPathRejected(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should be rejected")
	}
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("empty path should be rejected")
	}
}
