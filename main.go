// =============================================================================
// CSV Normalizer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV Normalizer CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csvnorm normalize <input> [output]  - Normalize a single file
//   csvnorm normalize                   - Process all files in the input directory
//   csvnorm version                     - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core normalization logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"csv-normalizer/cmd"
)

func main() {
	cmd.Execute()
}
