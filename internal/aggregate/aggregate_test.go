package aggregate

import (
	"reflect"
	"testing"

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

func TestFlatTable_Empty(t *testing.T) {
	table := New().FlatTable()

	if !reflect.DeepEqual(table.Header, []string{"Filename"}) {
		t.Errorf("Header = %v, want [Filename]", table.Header)
	}
	if len(table.Rows) != 0 {
		t.Errorf("Rows = %v, want none", table.Rows)
	}
}

func TestFlatTable_DisjointSelections(t *testing.T) {
	agg := New()
	agg.Add("a", fieldsFor(t, header.Header{NumChannels: 2, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))
	agg.Add("b", fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 44100}, field.Selection{SampleRateHz: true}.Set()))

	table := agg.FlatTable()

	wantHeader := []string{"Filename", "Number Of Channels", "Sample Rate (Hz)"}
	if !reflect.DeepEqual(table.Header, wantHeader) {
		t.Fatalf("Header = %v, want %v", table.Header, wantHeader)
	}

	wantRows := [][]string{
		{"a", "2", ""},
		{"b", "", "44100"},
	}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", table.Rows, wantRows)
	}
}

func TestFlatTable_Rectangular(t *testing.T) {
	agg := New()
	agg.Add("full", fieldsFor(t, header.Header{NumChannels: 2, BytesPerSample: 2, SampleRateHz: 48000, FrameCount: 10, CompressionTag: "NONE", CompressionName: "not compressed"}, field.All))
	agg.Add("narrow", fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))

	table := agg.FlatTable()
	for i, row := range table.Rows {
		if len(row) != len(table.Header) {
			t.Errorf("row %d has %d cells, header has %d", i, len(row), len(table.Header))
		}
	}
}

func TestAdd_DuplicateNameLastWriteWins(t *testing.T) {
	agg := New()
	agg.Add("x", fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))
	agg.Add("y", fieldsFor(t, header.Header{NumChannels: 2, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))
	agg.Add("x", fieldsFor(t, header.Header{NumChannels: 6, SampleRateHz: 8000}, field.Selection{NumChannels: true}.Set()))

	if got := agg.Names(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Names() = %v, want first-insertion order [x y]", got)
	}

	table := agg.FlatTable()
	if table.Rows[0][1] != "6" {
		t.Errorf("duplicate add: cell = %q, want the later value %q", table.Rows[0][1], "6")
	}
}

func TestFlatTable_RowsFollowInsertionOrder(t *testing.T) {
	agg := New()
	sel := field.Selection{NumChannels: true}.Set()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		agg.Add(name, fieldsFor(t, header.Header{NumChannels: 1, SampleRateHz: 8000}, sel))
	}

	table := agg.FlatTable()
	var got []string
	for _, row := range table.Rows {
		got = append(got, row[0])
	}
	if !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("row order = %v, want insertion order", got)
	}
}
