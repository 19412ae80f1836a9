package accrual

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := Settings{
		LastCheckbookDir: "/data/checkbooks",
		LastOutputDir:    "/data/reports",
		LastRunTime:      "2025-01-20 10:30:00",
		LastOutputFile:   "/data/reports/out.xlsx",
	}
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestLoadSettings_MissingFileDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadSettings() on a missing file error = %v, want nil", err)
	}
	if s.LastCheckbookDir == "" || s.LastOutputDir == "" {
		t.Errorf("defaults should point somewhere: %+v", s)
	}
}

func TestLoadSettings_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err == nil {
		t.Fatal("LoadSettings() on a corrupt file should report the error")
	}
	if s.LastCheckbookDir == "" || s.LastOutputDir == "" {
		t.Errorf("corrupt file should still yield usable defaults: %+v", s)
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"last_output_dir":"/out"}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.LastOutputDir != "/out" {
		t.Errorf("LastOutputDir = %q, want /out", s.LastOutputDir)
	}
	if s.LastCheckbookDir == "" {
		t.Errorf("missing fields should fall back to defaults: %+v", s)
	}
}
