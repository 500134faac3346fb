package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wavtools/wavmeta/internal/config"
	"github.com/wavtools/wavmeta/internal/export"
	"github.com/wavtools/wavmeta/internal/field"
	"github.com/wavtools/wavmeta/internal/output"
	"github.com/wavtools/wavmeta/internal/scan"
)

func main() {
	// Run settings
	var (
		inputDir       string
		outputFile     string
		writeCSV       bool
		writeJSON      bool
		verbose        bool
		skipUnreadable bool
		configPath     string
	)

	// One boolean per catalog field; none set means every field.
	var sel field.Selection

	boolFlag := func(p *bool, short, long, usage string) {
		flag.BoolVar(p, short, false, usage)
		flag.BoolVar(p, long, false, usage)
	}

	flag.StringVar(&inputDir, "i", "", "directory containing the wav files (default from config, else ./)")
	flag.StringVar(&inputDir, "input", "", "directory containing the wav files (default from config, else ./)")
	flag.StringVar(&outputFile, "o", "", "output file path without extension (default from config, else ./metadata)")
	flag.StringVar(&outputFile, "output", "", "output file path without extension (default from config, else ./metadata)")
	flag.StringVar(&configPath, "config", "", "path to a JSON config file with run defaults")

	flag.BoolVar(&writeCSV, "csv", false, "write <output>.csv")
	flag.BoolVar(&writeJSON, "json", false, "write <output>.json")
	boolFlag(&verbose, "v", "verbose", "echo the output data on the terminal")
	flag.BoolVar(&skipUnreadable, "skip-unreadable", false, "skip unreadable files instead of aborting the batch")

	boolFlag(&sel.NumChannels, "nc", "num-channels", "get the number of channels")
	boolFlag(&sel.BytesPerSample, "by", "bytes", "get the number of bytes per sample")
	boolFlag(&sel.BitsPerSample, "bi", "bits", "get the number of bits per sample")
	boolFlag(&sel.SampleRateHz, "sr", "sample-rate", "get the sample rate in Hz")
	boolFlag(&sel.SampleRateKHz, "srk", "sample-rate-khz", "get the sample rate in kHz")
	boolFlag(&sel.SamplePeriodS, "l", "period", "get the time between samples in seconds")
	boolFlag(&sel.SamplePeriodMs, "lm", "period-ms", "get the time between samples in milliseconds")
	boolFlag(&sel.SamplePeriodUs, "lu", "period-us", "get the time between samples in microseconds")
	boolFlag(&sel.FrameCount, "ns", "num-samples", "get the number of samples")
	boolFlag(&sel.CompressionType, "ct", "comp-type", "get the compression type tag")
	boolFlag(&sel.CompressionName, "cn", "comp-name", "get the compression name")

	flag.Parse()

	// Load config defaults, then let flags win.
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if inputDir != "" {
		settings.InputDirectory = inputDir
	}
	if outputFile != "" {
		settings.OutputFile = outputFile
	}
	settings.WriteCSV = settings.WriteCSV || writeCSV
	settings.WriteJSON = settings.WriteJSON || writeJSON
	settings.Verbose = settings.Verbose || verbose
	settings.SkipUnreadable = settings.SkipUnreadable || skipUnreadable

	if !settings.WriteCSV && !settings.WriteJSON {
		fmt.Println("wavmeta - extract header metadata from wav files")
		fmt.Println()
		fmt.Println("Nothing to do: pass -csv and/or -json to select an output format.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  wavmeta -i /path/to/wavs -o metadata -csv -json [field flags]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	var progress func(string)
	if settings.Verbose {
		progress = func(name string) {
			fmt.Fprintf(os.Stderr, "reading %s\n", name)
		}
	}

	agg, fileErrs, err := scan.Run(scan.Options{
		Dir:            settings.InputDirectory,
		Selection:      sel.Set(),
		SkipUnreadable: settings.SkipUnreadable,
		Progress:       progress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, fe := range fileErrs {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", fe)
	}

	writer := output.Writer{Base: settings.OutputFile}

	if settings.WriteCSV {
		csvText := export.TableCSV(agg.FlatTable())
		if settings.Verbose {
			// Tabs read better than commas on a terminal.
			fmt.Println(strings.ReplaceAll(csvText, ",", "\t"))
		}
		if _, err := writer.CSV(csvText); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
			os.Exit(1)
		}
	}

	if settings.WriteJSON {
		jsonText, err := export.AggregateJSON(agg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering json: %v\n", err)
			os.Exit(1)
		}
		if settings.Verbose {
			fmt.Println(jsonText)
		}
		if _, err := writer.JSON(jsonText); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing json: %v\n", err)
			os.Exit(1)
		}
	}
}
