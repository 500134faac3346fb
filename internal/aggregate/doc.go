// Package aggregate merges the per-file field maps of a batch run into
// one rectangular table.
//
// Files may carry different field subsets (a caller can vary the
// selection per file), so the table header is computed as the sorted
// union of every display name seen, with "Filename" prepended. Rows
// keep the order files were added in; missing cells stay empty rather
// than shifting columns.
package aggregate
