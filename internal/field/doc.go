// Package field defines the catalog of WAV metadata fields and the
// bitmask Set used to select a subset of them.
//
// # Catalog
//
// The catalog is a fixed list of 11 fields, from channel count through
// compression type. Each field has a stable display name used as the
// CSV header / JSON key:
//
//	field.NumChannels.DisplayName() // "Number Of Channels"
//	field.SampleRateHz.DisplayName() // "Sample Rate (Hz)"
//
// # Selections
//
// A Set packs one bit per field. Build one from a raw integer (as read
// off a wire or a config value):
//
//	sel, err := field.FromFlags(0b101) // channels + bits per sample
//
// or from named booleans, which is what the CLI flag surface does:
//
//	sel := field.Selection{NumChannels: true, SampleRateHz: true}.Set()
//
// # The zero sentinel
//
// The zero Set means "every field". FromFlags(0) returns field.All, and
// consumers call Normalize before iterating. Requesting literally no
// fields is impossible; out-of-range values are rejected with
// ErrInvalidSelection rather than treated as empty.
package field
