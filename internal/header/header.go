// Package header decodes the fixed-format preamble of WAV container
// files. It wraps github.com/go-audio/wav; nothing outside this package
// touches binary bytes.
package header

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ErrUnreadable reports a file that cannot be opened or whose container
// header cannot be decoded. Callers decide whether to skip or abort.
var ErrUnreadable = errors.New("unreadable wav container")

// Header holds the raw values decoded from one file's container
// preamble. It is populated exactly once by Read and read-only
// thereafter.
type Header struct {
	// NumChannels is the channel count (positive).
	NumChannels int

	// BytesPerSample is the sample width in bytes (positive).
	BytesPerSample int

	// SampleRateHz is the frame rate in Hertz (positive).
	SampleRateHz int

	// FrameCount is the number of sample frames (non-negative).
	FrameCount int

	// CompressionTag is the short compression identifier, "NONE" for
	// plain PCM.
	CompressionTag string

	// CompressionName is the human-readable compression description.
	CompressionName string
}

// Read opens the file at path and decodes its WAV header.
//
// Any failure — the file is missing, not a RIFF/WAVE container, or its
// format chunk is malformed — wraps ErrUnreadable together with the
// offending path.
func Read(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Header{}, fmt.Errorf("%w: %s: invalid or truncated header", ErrUnreadable, path)
	}

	bytesPerSample := int(dec.BitDepth) / 8
	if dec.NumChans == 0 || bytesPerSample == 0 || dec.SampleRate == 0 {
		return Header{}, fmt.Errorf("%w: %s: degenerate format chunk", ErrUnreadable, path)
	}

	// Frame count comes from the PCM data chunk size; one frame is one
	// sample across all channels.
	if err := dec.FwdToPCM(); err != nil {
		return Header{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	frames := int(dec.PCMSize) / (int(dec.NumChans) * bytesPerSample)

	tag, name := compression(dec.WavAudioFormat)

	return Header{
		NumChannels:     int(dec.NumChans),
		BytesPerSample:  bytesPerSample,
		SampleRateHz:    int(dec.SampleRate),
		FrameCount:      frames,
		CompressionTag:  tag,
		CompressionName: name,
	}, nil
}

// compression maps a WAV format code to its tag and display name.
// Format 1 is integer PCM, format 3 is IEEE float; those are the only
// codes the reader fully understands, the rest are labeled as-is.
func compression(code uint16) (tag, name string) {
	switch code {
	case 1:
		return "NONE", "not compressed"
	case 3:
		return "FLOAT", "IEEE float"
	case 6:
		return "ALAW", "CCITT A-law"
	case 7:
		return "ULAW", "CCITT u-law"
	default:
		return "UNKNOWN", fmt.Sprintf("format code %d", code)
	}
}
