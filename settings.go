package accrual

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSettingsFile is where the CLI remembers its recent locations.
const DefaultSettingsFile = "accrual_settings.json"

// Settings are the persisted conveniences of the CLI: the directories of the
// previous run and what it produced. They only ever default flags; the
// pipeline itself never reads them.
type Settings struct {
	LastCheckbookDir string `json:"last_checkbook_dir"`
	LastOutputDir    string `json:"last_output_dir"`
	LastRunTime      string `json:"last_run_time,omitempty"`
	LastOutputFile   string `json:"last_output_file,omitempty"`
}

// defaultSettings points both directories at the working directory.
func defaultSettings() Settings {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Settings{LastCheckbookDir: wd, LastOutputDir: wd}
}

// LoadSettings reads the settings at path. A missing file is not an error:
// the defaults are returned. A corrupt file returns the defaults and the
// error, so the caller can warn and move on.
func LoadSettings(path string) (Settings, error) {
	s := defaultSettings()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(content, &s); err != nil {
		return defaultSettings(), fmt.Errorf("corrupt settings file %q: %w", path, err)
	}
	if s.LastCheckbookDir == "" {
		s.LastCheckbookDir = defaultSettings().LastCheckbookDir
	}
	if s.LastOutputDir == "" {
		s.LastOutputDir = defaultSettings().LastOutputDir
	}
	return s, nil
}

// SaveSettings writes the settings at path.
func SaveSettings(path string, s Settings) error {
	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
