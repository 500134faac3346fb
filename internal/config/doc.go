// Package config provides configuration management for wavmeta.
//
// Settings persist the run defaults — input directory, output base
// path, output format toggles — as a small JSON file, so repeated runs
// over the same library don't need the full flag set every time.
//
// # Loading
//
//	settings, err := config.Load("/path/to/config.json")
//	// Missing file is fine: defaults are returned.
//
// # Saving
//
//	settings.InputDirectory = "/music/samples"
//	err := settings.Save("/path/to/config.json")
//
// Flags always win over file values; merging happens in the CLI.
package config
