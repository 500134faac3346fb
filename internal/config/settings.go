package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the persistent defaults for a batch run. Command line
// flags override any value loaded from file.
type Settings struct {
	// InputDirectory is the directory scanned for .wav files.
	InputDirectory string `json:"input_directory"`

	// OutputFile is the output base path without extension; the run
	// writes <output_file>.csv and/or <output_file>.json.
	OutputFile string `json:"output_file"`

	// WriteCSV enables the CSV output file.
	WriteCSV bool `json:"write_csv"`

	// WriteJSON enables the JSON output file.
	WriteJSON bool `json:"write_json"`

	// Verbose echoes rendered output to the console.
	Verbose bool `json:"verbose"`

	// SkipUnreadable continues past unreadable files instead of
	// aborting the batch on the first one.
	SkipUnreadable bool `json:"skip_unreadable"`
}

// DefaultSettings returns settings with default values: scan the
// current directory, write next to it, no outputs enabled.
func DefaultSettings() *Settings {
	return &Settings{
		InputDirectory: "./",
		OutputFile:     "./metadata",
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error; defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
