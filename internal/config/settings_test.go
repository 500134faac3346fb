package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	defaults := DefaultSettings()
	if *settings != *defaults {
		t.Errorf("Load(missing) = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "wavmeta.json")

	in := DefaultSettings()
	in.InputDirectory = "/music/samples"
	in.OutputFile = "/tmp/meta"
	in.WriteCSV = true
	in.Verbose = true
	in.SkipUnreadable = true

	if err := in.Save(path); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	partial := &Settings{}
	*partial = *DefaultSettings()
	partial.WriteJSON = true
	if err := partial.Save(path); err != nil {
		t.Fatal(err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !out.WriteJSON {
		t.Error("WriteJSON not loaded")
	}
	if out.OutputFile != DefaultSettings().OutputFile {
		t.Errorf("OutputFile = %q, want default", out.OutputFile)
	}
}
