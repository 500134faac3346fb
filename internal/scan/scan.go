package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wavtools/wavmeta/internal/aggregate"
	"github.com/wavtools/wavmeta/internal/field"
	"github.com/wavtools/wavmeta/internal/metadata"
)

// Ext is the container extension that marks a directory entry as an
// input file. Matching is case-sensitive; anything else is silently
// skipped.
const Ext = ".wav"

// FileError records one file that could not be read during a
// skip-and-continue run.
type FileError struct {
	// Name is the directory entry's filename.
	Name string

	// Err is the underlying read failure, wrapping header.ErrUnreadable.
	Err error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Options configures one batch run.
type Options struct {
	// Dir is the input directory.
	Dir string

	// Selection picks the fields to derive per file. Zero means every
	// field.
	Selection field.Set

	// SkipUnreadable switches the per-file error policy. When false
	// (the default) the first unreadable file aborts the whole run.
	// When true, unreadable files are collected and the run continues.
	SkipUnreadable bool

	// Progress, when non-nil, is called with each file as it is read.
	Progress func(name string)
}

// Run reads the header of every *.wav entry in the directory, derives
// the selected fields, and accumulates them into a single Aggregator.
//
// Files are processed one at a time in directory-listing order.
// Aggregator keys are the entry names with the extension stripped, so
// two entries that collide after stripping follow the aggregator's
// last-write-wins rule.
func Run(opts Options) (*aggregate.Aggregator, []FileError, error) {
	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input directory: %w", err)
	}

	agg := aggregate.New()
	var fileErrs []FileError

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		if opts.Progress != nil {
			opts.Progress(name)
		}

		rec, err := metadata.Read(filepath.Join(opts.Dir, name))
		if err != nil {
			if opts.SkipUnreadable {
				fileErrs = append(fileErrs, FileError{Name: name, Err: err})
				continue
			}
			return nil, nil, err
		}

		fields, err := rec.Fields(opts.Selection)
		if err != nil {
			// Invalid selections are caller bugs, not file problems;
			// they abort regardless of the skip policy.
			return nil, nil, err
		}

		agg.Add(strings.TrimSuffix(name, Ext), fields)
	}

	return agg, fileErrs, nil
}
