// =============================================================================
// CSV Normalizer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the 'normalize' and 'version' commands attach to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csvnorm)
//   ├── normalizeCmd (csvnorm normalize)
//   └── versionCmd (csvnorm version)
//
// The root command owns the global flags and the logger lifecycle: the zap
// logger is built before any subcommand runs and flushed after it returns.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logger is the application logger, built in PersistentPreRunE.
var logger *zap.Logger

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csvnorm",
	Short: "CSV Normalizer - Normalize 8-column CSV exports",
	Long: `CSV Normalizer rewrites 8-column CSV records into a normalized form:

  - Timestamps are converted from US Pacific to US Eastern ISO-8601
  - ZIP codes are zero-padded to 5 digits
  - Names are upper-cased
  - Durations become seconds, with the total recomputed from its parts
  - All text is NFC-normalized, with unrepresentable characters replaced

An optional header line may reorder the 8 columns. Malformed lines are
skipped and reported, up to a configurable error budget; crossing the budget
aborts the run.

Example Usage:
  csvnorm normalize in.csv out.csv      # Normalize a single file
  csvnorm normalize                     # Process every file in the input directory
  csvnorm normalize --config ./my.yaml  # Use a custom configuration file`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
