// =============================================================================
// CSV Normalizer - File Manager Utility
// =============================================================================
//
// This module provides the file plumbing around the normalization core:
//   - Input file discovery
//   - Archival of successfully processed inputs
//   - Per-run failure report generation
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the input archive after successful processing
//   - Failed files remain in their original location
//   - Failure reports are created in the report directory
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the normalizer.
type FileManager struct {
	// InputDir is the directory where input files are placed.
	InputDir string

	// OutputDir is the directory where normalized files are placed.
	OutputDir string

	// InputArchiveDir is the directory for archived input files.
	InputArchiveDir string

	// ReportDir is the directory for failure reports.
	ReportDir string
}

// NewFileManager creates a FileManager for the specified directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir, reportDir string) *FileManager {
	return &FileManager{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
		ReportDir:       reportDir,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.InputArchiveDir,
		fm.ReportDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the processable files in the input directory,
// sorted by name. Both .csv and .xlsx files are accepted; subdirectories
// are not descended into.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			files = append(files, filepath.Join(fm.InputDir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// OutputPathFor derives the output file path for an input file:
// <output_dir>/<name>_normalized.csv.
func (fm *FileManager) OutputPathFor(inputPath string) string {
	name := filepath.Base(inputPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(fm.OutputDir, name+"_normalized.csv")
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveInput moves a successfully processed input file into the input
// archive. A name collision in the archive gets a short unique suffix
// rather than overwriting the existing file.
func (fm *FileManager) ArchiveInput(inputPath string) error {
	name := filepath.Base(inputPath)
	dest := filepath.Join(fm.InputArchiveDir, name)

	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		dest = filepath.Join(fm.InputArchiveDir, fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext))
	}

	if err := os.Rename(inputPath, dest); err != nil {
		return fmt.Errorf("failed to archive %s: %w", name, err)
	}

	return nil
}

// =============================================================================
// FAILURE REPORTS
// =============================================================================

// FailureEntry describes one skipped input line.
type FailureEntry struct {
	// Line is the 1-indexed line number in the input file.
	Line int

	// Reason is the failure description.
	Reason string

	// Raw is the original input line.
	Raw string
}

// WriteFailureReport writes the skipped lines of one input file to a report
// named after the input file and the run id. Returns the report path, or
// an empty string when there is nothing to report.
func (fm *FileManager) WriteFailureReport(inputPath, runID string, failures []FailureEntry) (string, error) {
	if len(failures) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(fm.ReportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := filepath.Base(inputPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	reportPath := filepath.Join(fm.ReportDir, fmt.Sprintf("%s_failed_%s.csv", name, runID))

	var sb strings.Builder
	sb.WriteString("Line,Reason,Raw\n")
	for _, f := range failures {
		sb.WriteString(fmt.Sprintf("%d,%q,%q\n", f.Line, f.Reason, f.Raw))
	}

	if err := os.WriteFile(reportPath, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write failure report: %w", err)
	}

	return reportPath, nil
}
