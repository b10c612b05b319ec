// =============================================================================
// CSV to NDO Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to NDO Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   ndoconv build         - Convert the CSV tables into the NDO schema YAML
//   ndoconv validate      - Validate the input tables without writing output
//   ndoconv version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//   - csv_examples/  : Contains sample input tables
//
// =============================================================================

package main

import (
	"github.com/ndotools/CSV-to-NDO-conversion/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
