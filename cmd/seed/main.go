// Package main provides the seed command-line tool that writes the embedded
// sample flight dataset to disk for local pipeline runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"flightprep/internal/ingest"
)

func main() {
	outputPath := flag.String("output", "flights.txt", "Path to write the sample dataset")
	flag.Parse()

	if dir := filepath.Dir(*outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*outputPath, []byte(ingest.SampleData), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote sample dataset to %s (%d bytes)\n", *outputPath, len(ingest.SampleData))
}
