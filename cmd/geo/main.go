// Package main provides the geo CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"geocalc/internal/config"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geo",
	Short: "geocalc - interactive geometry calculator",
	Long: `geocalc computes area, perimeter, volume and surface area of common
2D and 3D shapes using closed-form formulas.

Run without arguments to start the interactive calculator. Every result can
be appended to a human-readable journal file (geometry_results.txt by
default); see 'geo compute --help' for one-shot use and 'geo batch --help'
for computing a whole file of requests.

Results are double-precision floating point, approximate to float64
precision, never symbolic.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (the TUI owns the terminal)
		if cmd.Use == "geo" && cmd.CalledAs() == "geo" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		level := zapcore.InfoLevel
		if cfg, err := config.Load(cfgPath); err == nil {
			if parsed, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
				level = parsed
			}
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)

		var err error
		logger, err = zcfg.Build()
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
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: .geocalc/config.yaml)")

	computeCmd.Flags().StringArrayVarP(&computeDims, "dim", "d", nil, "Dimension as name=value (repeatable)")
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "Emit the result as JSON")
	computeCmd.Flags().BoolVar(&computeNoJournal, "no-journal", false, "Skip the journal append")

	shapesCmd.Flags().StringVarP(&shapesCategory, "category", "c", "", "Restrict to one category (2d or 3d)")

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "Concurrent compute workers")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit results as JSON")
	batchCmd.Flags().BoolVar(&batchNoJournal, "no-journal", false, "Skip the journal appends")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
