package export

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/wavtools/wavmeta/internal/aggregate"
	"github.com/wavtools/wavmeta/internal/field"
	"github.com/wavtools/wavmeta/internal/header"
	"github.com/wavtools/wavmeta/internal/metadata"
)

func fieldsFor(t *testing.T, hdr header.Header, sel field.Set) *metadata.FieldMap {
	t.Helper()
	fm, err := metadata.New("test.wav", hdr).Fields(sel)
	if err != nil {
		t.Fatal(err)
	}
	return fm
}

func TestTableCSV_TwoFilesDisjointFields(t *testing.T) {
	agg := aggregate.New()
	agg.Add("a", fieldsFor(t, header.Header{NumChannels: 2, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))
	agg.Add("b", fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 44100}, field.Selection{SampleRateHz: true}.Set()))

	got := TableCSV(agg.FlatTable())
	want := "Filename,Number Of Channels,Sample Rate (Hz)\n" +
		"a,2,\n" +
		"b,,44100"

	if got != want {
		t.Errorf("TableCSV:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableCSV_EmptyAggregate(t *testing.T) {
	got := TableCSV(aggregate.New().FlatTable())
	if got != "Filename" {
		t.Errorf("TableCSV(empty) = %q, want %q", got, "Filename")
	}
}

func TestRecordCSV(t *testing.T) {
	hdr := header.Header{
		NumChannels:    2,
		BytesPerSample: 2,
		SampleRateHz:   44100,
	}
	sel := field.Selection{NumChannels: true, BitsPerSample: true, SampleRateKHz: true}.Set()

	got := RecordCSV(fieldsFor(t, hdr, sel))
	want := "Number Of Channels,2\n" +
		"Bits Per Sample,16\n" +
		"Sample Rate (kHz),44.1\n"

	if got != want {
		t.Errorf("RecordCSV:\n%q\nwant:\n%q", got, want)
	}
}

func TestRecordJSON_SortedKeysAndIndent(t *testing.T) {
	hdr := header.Header{NumChannels: 2, BytesPerSample: 2, SampleRateHz: 44100}
	sel := field.Selection{NumChannels: true, BytesPerSample: true}.Set()

	got, err := RecordJSON(fieldsFor(t, hdr, sel))
	if err != nil {
		t.Fatal(err)
	}

	want := "{\n" +
		"    \"Bytes Per Sample\": 2,\n" +
		"    \"Number Of Channels\": 2\n" +
		"}"
	if got != want {
		t.Errorf("RecordJSON:\n%s\nwant:\n%s", got, want)
	}
}

func TestAggregateJSON_NestedAndSorted(t *testing.T) {
	agg := aggregate.New()
	// Added out of lexicographic order on purpose.
	agg.Add("zeta", fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))
	agg.Add("alpha", fieldsFor(t, header.Header{NumChannels: 2, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))

	got, err := AggregateJSON(agg)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(got, "{\n    \"alpha\"") {
		t.Errorf("outer keys not sorted:\n%s", got)
	}

	var parsed map[string]map[string]any
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["zeta"]["Number Of Channels"] != float64(1) {
		t.Errorf("zeta channels = %v, want 1", parsed["zeta"]["Number Of Channels"])
	}
}

func TestAggregateJSON_StableRoundTrip(t *testing.T) {
	agg := aggregate.New()
	agg.Add("a", fieldsFor(t, header.Header{NumChannels: 2, BytesPerSample: 2, SampleRateHz: 44100, FrameCount: 7, CompressionTag: "NONE", CompressionName: "not compressed"}, field.All))

	first, err := AggregateJSON(agg)
	if err != nil {
		t.Fatal(err)
	}

	// Re-parse and re-serialize with the same sort rule; the document
	// must not change.
	var parsed map[string]map[string]any
	if err := json.Unmarshal([]byte(first), &parsed); err != nil {
		t.Fatal(err)
	}
	second, err := json.MarshalIndent(parsed, "", "    ")
	if err != nil {
		t.Fatal(err)
	}
	if first != string(second) {
		t.Errorf("round trip changed the document:\n%s\nvs:\n%s", first, second)
	}

	var reparsed map[string]map[string]any
	if err := json.Unmarshal(second, &reparsed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(parsed, reparsed) {
		t.Error("round trip changed the parsed values")
	}
}
