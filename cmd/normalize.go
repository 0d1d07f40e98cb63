// =============================================================================
// CSV Normalizer - Normalize Command
// =============================================================================
//
// This file defines the 'normalize' command, which runs the normalization
// pipeline. It supports two modes:
//
//   SINGLE-FILE MODE:
//     csvnorm normalize <input> [output]
//     Normalizes one file. The output path defaults to
//     <output_dir>/<name>_normalized.csv when omitted.
//
//   BATCH MODE:
//     csvnorm normalize
//     Scans the configured input directory for .csv and .xlsx files,
//     normalizes each one, archives successfully processed inputs, and
//     writes a failure report per file with skipped lines.
//
// Files are processed sequentially, line by line. Each file gets its own
// error budget; a file that exhausts it counts as failed, and the command
// exits non-zero when any file failed.
//
// =============================================================================

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csv-normalizer/internal/config"
	"csv-normalizer/internal/processor"
	"csv-normalizer/internal/xlsxreader"
	"csv-normalizer/pkg/utils"
)

// dryRun simulates processing without writing output files or archiving.
var dryRun bool

// normalizeCmd represents the 'normalize' command.
var normalizeCmd = &cobra.Command{
	Use:   "normalize [input] [output]",
	Short: "Normalize CSV files",
	Long: `The normalize command reads 8-column CSV (or XLSX) records, applies the
per-field normalization rules, and writes the normalized lines out.

With positional arguments it processes a single file. Without arguments it
scans the configured input directory, writes each result to the output
directory, moves processed inputs to the archive, and leaves a report of
skipped lines per file.

Skipped lines never abort a file on their own; only exhausting the error
budget (max_errors, default 100) does.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args)
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing output files",
	)
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// fileResult represents the outcome of processing a single file.
type fileResult struct {
	// InputPath is the input file that was processed.
	InputPath string

	// OutputPath is the normalized output file. Empty on failure.
	OutputPath string

	// ReportPath is the failure report, when any line was skipped.
	ReportPath string

	// LinesRead, LinesEmitted and LinesSkipped count the input lines,
	// the emitted output lines and the skipped lines.
	LinesRead    int
	LinesEmitted int
	LinesSkipped int

	// Err is the fatal error that stopped the file, if any.
	Err error
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runNormalize orchestrates the normalization run.
func runNormalize(args []string) error {
	startTime := time.Now()
	runID := uuid.NewString()[:8]

	cfg, err := loadConfig(len(args) > 0)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir, cfg.ReportDir)

	var inputs []string
	singleOutput := ""

	if len(args) > 0 {
		inputs = []string{args[0]}
		if len(args) > 1 {
			singleOutput = args[1]
		}
	} else {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
		inputs, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			fmt.Println("No input files found.")
			return nil
		}
	}

	logger.Info("starting run",
		zap.String("run_id", runID),
		zap.Int("files", len(inputs)),
		zap.Int("max_errors", cfg.MaxErrors),
		zap.Bool("dry_run", dryRun),
	)

	var failedFiles int
	for _, input := range inputs {
		outPath := singleOutput
		if outPath == "" {
			outPath = fm.OutputPathFor(input)
		}

		result := processFile(input, outPath, cfg, fm, runID)

		if result.Err != nil {
			failedFiles++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(input), result.Err)
			continue
		}

		// Archive only files that came from the input directory.
		if !dryRun && len(args) == 0 {
			if err := fm.ArchiveInput(input); err != nil {
				logger.Warn("archive failed", zap.String("file", input), zap.Error(err))
			}
		}

		fmt.Printf("  ✓ %s -> %s (%d lines, %d skipped)\n",
			filepath.Base(input), result.OutputPath, result.LinesEmitted, result.LinesSkipped)
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputs))
	fmt.Printf("Successful:      %d\n", len(inputs)-failedFiles)
	fmt.Printf("Failed:          %d\n", failedFiles)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if failedFiles > 0 {
		return fmt.Errorf("%d file(s) failed", failedFiles)
	}
	return nil
}

// loadConfig loads the configuration file, falling back to defaults in
// single-file mode when the file does not exist.
func loadConfig(singleMode bool) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if singleMode && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

// processFile normalizes one input file and writes the output, the failure
// report, and the result summary.
func processFile(inputPath, outputPath string, cfg *config.Config, fm *utils.FileManager, runID string) fileResult {
	result := fileResult{InputPath: inputPath}

	proc := processor.NewWithDelimiter(cfg.MaxErrors, cfg.DelimiterRune())

	var outLines []string
	var failures []utils.FailureEntry

	emit := func(raw string, out string, ok bool, err error) bool {
		result.LinesRead++
		switch {
		case err != nil && processor.IsBudgetExhausted(err):
			result.Err = err
			logger.Error("error budget exhausted",
				zap.String("file", inputPath), zap.Error(err))
			return false
		case err != nil:
			result.LinesSkipped++
			failures = append(failures, utils.FailureEntry{
				Line:   result.LinesRead,
				Reason: err.Error(),
				Raw:    raw,
			})
			logger.Warn("line skipped", zap.String("file", inputPath), zap.Error(err))
		case ok:
			result.LinesEmitted++
			outLines = append(outLines, out)
		}
		return true
	}

	var err error
	if strings.EqualFold(filepath.Ext(inputPath), ".xlsx") {
		err = processWorkbook(inputPath, proc, emit)
	} else {
		err = processTextFile(inputPath, proc, emit)
	}
	if err != nil && result.Err == nil {
		result.Err = err
	}
	if result.Err != nil {
		return result
	}

	if !dryRun {
		if err := writeLines(outputPath, outLines); err != nil {
			result.Err = err
			return result
		}
		reportPath, err := fm.WriteFailureReport(inputPath, runID, failures)
		if err != nil {
			logger.Warn("failure report not written", zap.Error(err))
		}
		result.ReportPath = reportPath
	}

	result.OutputPath = outputPath
	return result
}

// processTextFile feeds the lines of a CSV file to the processor. Reading
// stops at the first empty line, matching the legacy input contract.
func processTextFile(path string, proc *processor.Processor, emit func(string, string, bool, error) bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		out, ok, err := proc.ProcessLine(line)
		if !emit(line, out, ok, err) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	return nil
}

// processWorkbook feeds the rows of an XLSX workbook to the processor.
func processWorkbook(path string, proc *processor.Processor, emit func(string, string, bool, error) bool) error {
	records, err := xlsxreader.ReadRecords(path)
	if err != nil {
		return err
	}

	for _, record := range records {
		out, ok, err := proc.ProcessRecord(record)
		if !emit(strings.Join(record, ","), out, ok, err) {
			return nil
		}
	}
	return nil
}

// writeLines writes the normalized lines to the output file.
func writeLines(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
