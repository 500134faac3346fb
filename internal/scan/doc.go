// Package scan runs one sequential batch: list a directory, read the
// header of every .wav entry, and aggregate the selected fields.
//
// The run is strictly single-threaded, in directory-listing order, and
// owns the only Aggregator instance. By default an unreadable file
// aborts the whole batch with no partial result; Options.SkipUnreadable
// switches to skip-and-continue with a per-file error list.
package scan
