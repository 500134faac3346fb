package field

import "errors"

// Field identifies one metadata quantity in the fixed catalog.
//
// The catalog order is load-bearing: it fixes both the bit position of
// each field inside a Set and the insertion order of derived field maps,
// so new fields must only ever be appended.
type Field int

const (
	// NumChannels is the number of audio channels.
	NumChannels Field = iota

	// BytesPerSample is the sample width in bytes.
	BytesPerSample

	// BitsPerSample is the sample width in bits (bytes × 8).
	BitsPerSample

	// SampleRateHz is the frame rate in Hertz.
	SampleRateHz

	// SampleRateKHz is the frame rate in kilohertz.
	SampleRateKHz

	// SamplePeriodS is the time between samples in seconds.
	SamplePeriodS

	// SamplePeriodMs is the time between samples in milliseconds.
	SamplePeriodMs

	// SamplePeriodUs is the time between samples in microseconds.
	SamplePeriodUs

	// FrameCount is the number of sample frames in the file.
	FrameCount

	// CompressionName is the human-readable compression description.
	CompressionName

	// CompressionType is the short compression tag (e.g. "NONE").
	CompressionType

	numFields
)

// displayNames maps each field to its stable display name. These strings
// are part of the output format (CSV headers, JSON keys) and must not
// change.
var displayNames = [numFields]string{
	NumChannels:     "Number Of Channels",
	BytesPerSample:  "Bytes Per Sample",
	BitsPerSample:   "Bits Per Sample",
	SampleRateHz:    "Sample Rate (Hz)",
	SampleRateKHz:   "Sample Rate (kHz)",
	SamplePeriodS:   "Time Between Samples (s)",
	SamplePeriodMs:  "Time Between Samples (ms)",
	SamplePeriodUs:  "Time Between Samples (us)",
	FrameCount:      "Number Of Samples",
	CompressionName: "Compression Name",
	CompressionType: "Compression Type",
}

// DisplayName returns the stable, user-visible name of the field.
func (f Field) DisplayName() string {
	if f < 0 || f >= numFields {
		return ""
	}
	return displayNames[f]
}

// Catalog returns every field in catalog order.
func Catalog() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Set is a selection of catalog fields, one bit per field at the field's
// catalog position.
//
// The zero Set is a documented sentinel meaning "every field": callers
// that pass 0 keep getting all fields even after the catalog grows.
// A literally empty selection is not representable; out-of-range raw
// values are rejected by FromFlags instead.
type Set uint16

// All selects every field in the catalog.
const All Set = 1<<numFields - 1

// ErrInvalidSelection reports a raw selection value outside the
// representable range. The value is rejected, never clamped.
var ErrInvalidSelection = errors.New("field: selection out of range")

// FromFlags converts a raw integer bitmask into a Set.
//
// Values below zero or above the full catalog combination return
// ErrInvalidSelection. Zero is valid and yields All.
func FromFlags(raw int) (Set, error) {
	if raw < 0 || raw > int(All) {
		return 0, ErrInvalidSelection
	}
	if raw == 0 {
		return All, nil
	}
	return Set(raw), nil
}

// Contains reports whether f is part of the selection. The zero
// sentinel is not expanded here; normalize with Normalize first if the
// Set may be zero.
func (s Set) Contains(f Field) bool {
	if f < 0 || f >= numFields {
		return false
	}
	return s&(1<<uint(f)) != 0
}

// Union returns the combination of both selections.
func (s Set) Union(other Set) Set {
	return s | other
}

// Valid reports whether the Set stays within the catalog bits.
func (s Set) Valid() bool {
	return s <= All
}

// Normalize resolves the zero sentinel to All and leaves every other
// value unchanged.
func (s Set) Normalize() Set {
	if s == 0 {
		return All
	}
	return s
}

// Selection names each catalog field as an independent boolean. It is
// the bridge between one-flag-per-field surfaces (the command line) and
// the packed Set representation.
type Selection struct {
	NumChannels     bool
	BytesPerSample  bool
	BitsPerSample   bool
	SampleRateHz    bool
	SampleRateKHz   bool
	SamplePeriodS   bool
	SamplePeriodMs  bool
	SamplePeriodUs  bool
	FrameCount      bool
	CompressionName bool
	CompressionType bool
}

// Set packs the named booleans into a Set, each at its field's catalog
// bit. A Selection with nothing set produces the zero Set, i.e. the
// "every field" sentinel.
func (sel Selection) Set() Set {
	var s Set
	include := func(on bool, f Field) {
		if on {
			s |= 1 << uint(f)
		}
	}
	include(sel.NumChannels, NumChannels)
	include(sel.BytesPerSample, BytesPerSample)
	include(sel.BitsPerSample, BitsPerSample)
	include(sel.SampleRateHz, SampleRateHz)
	include(sel.SampleRateKHz, SampleRateKHz)
	include(sel.SamplePeriodS, SamplePeriodS)
	include(sel.SamplePeriodMs, SamplePeriodMs)
	include(sel.SamplePeriodUs, SamplePeriodUs)
	include(sel.FrameCount, FrameCount)
	include(sel.CompressionName, CompressionName)
	include(sel.CompressionType, CompressionType)
	return s
}
