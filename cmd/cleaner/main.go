// Package main provides the cleaner command that runs the full pipeline:
// ingestion, cleaning, validation, projection and export.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"flightprep/internal/cleaner"
	"flightprep/internal/config"
	"flightprep/internal/exporter"
	"flightprep/internal/ingest"
	"flightprep/internal/logger"
	"flightprep/internal/projector"
	"flightprep/internal/validator"
	"flightprep/pkg/manifest"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	inputFile := flag.String("input", "", "Path to a raw flight table file (overrides config)")
	inputURL := flag.String("url", "", "URL of a raw flight table (overrides config)")
	outputPath := flag.String("output", "", "Path of the cleaned CSV (overrides config)")
	flag.Parse()

	// Load configuration, falling back to defaults when no file is given.
	var cfg *config.Config

	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	if *inputFile != "" {
		cfg.Source.File = *inputFile
	}

	if *inputURL != "" {
		cfg.Source.URL = *inputURL
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	log := logger.NewLoggerWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("🚀 Starting flight data cleaning pipeline")

	// 1. Ingestion
	// ------------
	log.Info("Phase 1: Ingestion (acquire & parse)...")

	startTime := time.Now()

	client := ingest.NewClientWithDeps(
		ingest.NewFetcherWithConfig(&cfg.Retry, 1024),
		ingest.NewParser(),
	)

	rawTable, err := client.LoadTable(&cfg.Source)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Ingestion failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Parsed %d rows, %d columns in %v",
		rawTable.Len(), len(rawTable.Columns), time.Since(startTime)))

	// 2. Cleaning
	// -----------
	log.Info("Phase 2: Cleaning (normalization rules)...")

	processor := cleaner.NewProcessor(&cfg.Pipeline)

	cleanedTable, err := processor.Process(rawTable)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Cleaning failed: %v", err))
		os.Exit(1)
	}

	// 3. Validation
	// -------------
	validated := true

	if cfg.Validation.Enabled {
		log.Info("Phase 3: Validation (invariant checks)...")

		result := validator.NewTableValidator(cfg).ValidateTable(cleanedTable)

		for _, warning := range result.Warnings {
			log.Warn(warning)
		}

		for _, vErr := range result.Errors {
			log.Error(fmt.Sprintf("row %d, %s: %s", vErr.Row, vErr.Column, vErr.Message))
		}

		log.Info(fmt.Sprintf("Validation: %d/%d rows valid",
			result.Stats.ValidRows, result.Stats.TotalRows))

		validated = result.IsValid

		if !result.IsValid && cfg.Validation.Strict {
			log.Error("❌ Validation failed in strict mode")
			os.Exit(1)
		}
	}

	// 4. Projection
	// -------------
	log.Info("Phase 4: Projection (output columns)...")

	finalTable, err := projector.NewProjector().Project(cleanedTable)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Projection failed: %v", err))
		os.Exit(1)
	}

	// 5. Export
	// ---------
	log.Info("Phase 5: Export (CSV & manifest)...")

	csvData, err := exporter.SaveCSV(cfg.Output.Path, finalTable)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		os.Exit(1)
	}

	if cfg.Output.WriteManifest {
		manifestPath := cfg.Output.Path + ".manifest"
		manifestText := manifest.Build(csvData, finalTable.Len(), validated)

		if err := os.WriteFile(manifestPath, []byte(manifestText), 0644); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to write manifest: %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("📝 Manifest written to %s", manifestPath))
	}

	if cfg.Output.ShowPreview {
		fmt.Println("\n--- Cleaned Flight Data ---")
		fmt.Print(exporter.RenderTable(finalTable))
	}

	log.Info(fmt.Sprintf("✅ Saved %d rows to %s", finalTable.Len(), cfg.Output.Path))
}
