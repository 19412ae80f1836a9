package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/accrual"
)

// loadSettings reads the settings file from the global -settings flag,
// falling back to defaults when the file is missing or unreadable.
func loadSettings() accrual.Settings {
	s, err := accrual.LoadSettings(*settingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load settings: %v\n", err)
	}
	return s
}

// saveSettings persists s, remembering the locations of this run for the
// next one. Failures are warnings: settings are a convenience.
func saveSettings(s accrual.Settings) {
	if err := accrual.SaveSettings(*settingsFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save settings: %v\n", err)
	}
}

// rememberRun records the paths of a completed generation in the settings.
func rememberRun(s *accrual.Settings, checkbook, output string, when string) {
	s.LastCheckbookDir = filepath.Dir(checkbook)
	s.LastOutputDir = filepath.Dir(output)
	s.LastOutputFile = output
	s.LastRunTime = when
}
