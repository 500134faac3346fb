package aggregate

import (
	"sort"

	"github.com/wavtools/wavmeta/internal/metadata"
)

// Aggregator accumulates the selected fields of many files, keyed by
// filename (extension already stripped by the caller).
//
// It is append-only: entries are never removed or reordered. Adding a
// name twice keeps the original position and replaces the value — last
// write wins, an accepted edge case for directory entries that collide
// after extension stripping.
type Aggregator struct {
	names []string
	files map[string]*metadata.FieldMap
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{files: make(map[string]*metadata.FieldMap)}
}

// Add records the selected fields for one file.
func (a *Aggregator) Add(name string, fields *metadata.FieldMap) {
	if _, ok := a.files[name]; !ok {
		a.names = append(a.names, name)
	}
	a.files[name] = fields
}

// Len returns the number of files recorded.
func (a *Aggregator) Len() int {
	return len(a.names)
}

// Names returns the filenames in insertion order.
func (a *Aggregator) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Fields returns the field map recorded for name.
func (a *Aggregator) Fields(name string) (*metadata.FieldMap, bool) {
	fm, ok := a.files[name]
	return fm, ok
}

// Table is the rectangular view over the aggregate: a header row plus
// one row per file, every row exactly len(Header) cells wide.
type Table struct {
	// Header is the sorted union of display names, with "Filename"
	// always first.
	Header []string

	// Rows holds one stringified row per file, in insertion order.
	// Cells for fields a file did not select are empty strings.
	Rows [][]string
}

// FlatTable flattens the heterogeneous per-file field sets into one
// rectangular table.
//
// Two passes are required: the header is the union of every display
// name seen across all files, so row shape is unknown until every
// record has been visited once.
func (a *Aggregator) FlatTable() Table {
	// Pass 1: collect and sort the union of display names.
	seen := make(map[string]bool)
	var header []string
	for _, name := range a.names {
		for _, f := range a.files[name].Fields() {
			display := f.DisplayName()
			if !seen[display] {
				seen[display] = true
				header = append(header, display)
			}
		}
	}
	sort.Strings(header)
	header = append([]string{"Filename"}, header...)

	column := make(map[string]int, len(header))
	for i, name := range header {
		column[name] = i
	}

	// Pass 2: fill rows aligned to the header, empty cells for absent
	// fields so the table stays rectangular.
	rows := make([][]string, 0, len(a.names))
	for _, name := range a.names {
		row := make([]string, len(header))
		row[0] = name
		fm := a.files[name]
		for _, f := range fm.Fields() {
			v, _ := fm.Value(f)
			row[column[f.DisplayName()]] = metadata.FormatValue(v)
		}
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}
}
