// Package output persists rendered documents as sibling files sharing
// one base path, the way a run writes <base>.csv and <base>.json next
// to each other.
package output

import (
	"os"
	"path/filepath"
)

// Writer writes documents under a common base path (no extension).
// Existing files are overwritten unconditionally; write failures are
// returned to the caller as-is, with no retry and no cleanup of a
// partially written file.
type Writer struct {
	// Base is the output path without extension, e.g. "./metadata".
	Base string
}

// CSV writes content to <Base>.csv and returns the written path.
func (w Writer) CSV(content string) (string, error) {
	return w.write(".csv", content)
}

// JSON writes content to <Base>.json and returns the written path.
func (w Writer) JSON(content string) (string, error) {
	return w.write(".json", content)
}

func (w Writer) write(ext, content string) (string, error) {
	path := w.Base + ext
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
