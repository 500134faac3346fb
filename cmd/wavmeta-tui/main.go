package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wavtools/wavmeta/internal/tui"
)

func main() {
	var dir string
	flag.StringVar(&dir, "i", "", "directory to scan (prompted for if omitted)")
	flag.StringVar(&dir, "input", "", "directory to scan (prompted for if omitted)")
	flag.Parse()

	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := tui.Run(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
