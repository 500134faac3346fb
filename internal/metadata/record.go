package metadata

import (
	"github.com/wavtools/wavmeta/internal/field"
	"github.com/wavtools/wavmeta/internal/header"
)

// Record couples one file's decoded container header with the logic
// that derives display fields from it.
//
// The header values are captured once at construction and never
// mutated; every Fields call derives a fresh map from them.
type Record struct {
	// Path is the file the header was read from.
	Path string

	hdr header.Header
}

// Read constructs a Record by decoding the WAV header at path.
// Decoding failures surface header.ErrUnreadable.
func Read(path string) (*Record, error) {
	hdr, err := header.Read(path)
	if err != nil {
		return nil, err
	}
	return &Record{Path: path, hdr: hdr}, nil
}

// New constructs a Record from an already-decoded header. Used by
// callers that obtained the header elsewhere and by tests.
func New(path string, hdr header.Header) *Record {
	return &Record{Path: path, hdr: hdr}
}

// Header returns the raw decoded header values.
func (r *Record) Header() header.Header {
	return r.hdr
}

// Fields derives the selected display fields from the raw header.
//
// An out-of-range selection returns field.ErrInvalidSelection, matching
// field.FromFlags: derivation never partially computes on an invalid
// set. The zero Set selects every field. Insertion order follows the
// catalog, independent of which subset is selected.
func (r *Record) Fields(sel field.Set) (*FieldMap, error) {
	if !sel.Valid() {
		return nil, field.ErrInvalidSelection
	}
	sel = sel.Normalize()

	m := newFieldMap()
	for _, f := range field.Catalog() {
		if !sel.Contains(f) {
			continue
		}
		m.put(f, r.value(f))
	}
	return m, nil
}

// value computes a single derived field from the raw header.
func (r *Record) value(f field.Field) any {
	switch f {
	case field.NumChannels:
		return r.hdr.NumChannels
	case field.BytesPerSample:
		return r.hdr.BytesPerSample
	case field.BitsPerSample:
		return r.hdr.BytesPerSample * 8
	case field.SampleRateHz:
		return r.hdr.SampleRateHz
	case field.SampleRateKHz:
		return float64(r.hdr.SampleRateHz) / 1000.0
	case field.SamplePeriodS:
		return 1.0 / float64(r.hdr.SampleRateHz)
	case field.SamplePeriodMs:
		return 1.0 / float64(r.hdr.SampleRateHz) * 1e3
	case field.SamplePeriodUs:
		return 1.0 / float64(r.hdr.SampleRateHz) * 1e6
	case field.FrameCount:
		return r.hdr.FrameCount
	case field.CompressionName:
		return r.hdr.CompressionName
	case field.CompressionType:
		return r.hdr.CompressionTag
	default:
		return nil
	}
}
