// Package main provides the verify command-line tool that checks a cleaned
// CSV file against its provenance manifest.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"flightprep/pkg/manifest"
)

func main() {
	inputPath := flag.String("input", "", "Path to a cleaned CSV file")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: verify -input <cleaned.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	manifestPath := *inputPath + ".manifest"

	manifestText, err := os.ReadFile(manifestPath)
	if err != nil {
		log.Fatalf("Error reading manifest: %v\n", err)
	}

	fmt.Printf("📂 Verifying: %s against %s\n", *inputPath, manifestPath)

	if _, err := manifest.Verify(content, string(manifestText)); err != nil {
		log.Fatalf("❌ Verification failed: %v\n", err)
	}

	m, err := manifest.Parse(string(manifestText))
	if err != nil {
		log.Fatalf("Error parsing manifest: %v\n", err)
	}

	status := "NOT VALIDATED"
	if m.Validation {
		status = "VALIDATED"
	}

	fmt.Printf("✅ Hash OK (%d rows, %s, last modified %s)\n",
		m.Rows, status, m.LastModify.Format("2006-01-02 15:04:05 MST"))
}
