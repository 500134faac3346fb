// Package metadata turns a decoded WAV header into the derived display
// fields users ask for.
//
// # Records
//
// A Record is constructed once per input file, either straight from
// disk or from a header decoded elsewhere:
//
//	rec, err := metadata.Read("/music/tone.wav")
//	rec := metadata.New("tone.wav", hdr)
//
// # Derivation
//
// Fields derives a fresh, ordered FieldMap for any selection:
//
//	fm, err := rec.Fields(field.Selection{BitsPerSample: true}.Set())
//
// Derivation rules are fixed: bits = bytes × 8, kHz = Hz / 1000,
// period = 1 / Hz (and its ms/µs scalings), compression values pass
// through unchanged. The map always inserts in catalog order, so CSV
// rows stay stable no matter which subset was selected.
package metadata
