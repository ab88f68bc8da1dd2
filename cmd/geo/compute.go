package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geocalc/internal/config"
	"geocalc/internal/geometry"
	"geocalc/internal/journal"
)

// Colorized printers for the one-shot commands, in the style of
// fmt.Printf variables.
var (
	printTitle  = color.New(color.FgCyan, color.Bold).PrintfFunc()
	printMetric = color.New(color.FgGreen).PrintfFunc()
	printMuted  = color.New(color.FgHiBlack).PrintfFunc()
	printWarn   = color.New(color.FgHiMagenta).PrintfFunc()
)

var (
	computeDims      []string
	computeJSON      bool
	computeNoJournal bool
)

// computeCmd computes one shape from the command line
var computeCmd = &cobra.Command{
	Use:   "compute <shape>",
	Short: "Compute the metrics of a single shape",
	Long: `Computes area/perimeter (2D) or volume/surface area (3D) for one shape.

Dimensions are passed as repeated --dim name=value flags; 'geo shapes' lists
the dimensions each shape requires.

Examples:
  geo compute circle --dim radius=2
  geo compute rectangle --dim width=3 --dim height=4
  geo compute sphere --dim radius=2 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load(cfgPath)

	dims, err := parseDims(computeDims)
	if err != nil {
		return err
	}

	res, err := geometry.Compute(args[0], dims)
	if err != nil {
		return err
	}
	logger.Debug("computed shape",
		zap.String("shape", res.Shape),
		zap.Int("metrics", len(res.Metrics)))

	if computeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		printResult(res, cfg.Precision)
	}

	if !computeNoJournal {
		jw := journal.NewWriter(cfg.JournalPath(), uuid.New().String()[:8])
		if err := jw.Append(res); err != nil {
			logger.Warn("journal append failed", zap.Error(err))
			printWarn("warning: %v\n", err)
		}
	}
	return nil
}

// parseDims turns repeated name=value flags into the dimension map.
func parseDims(pairs []string) (map[string]float64, error) {
	dims := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid dimension %q (want name=value)", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for dimension %q: %q is not a number", name, raw)
		}
		dims[name] = v
	}
	return dims, nil
}

func printResult(res geometry.Result, precision int) {
	printTitle("%s\n", res.Title)
	for _, in := range res.Inputs {
		printMuted("  %s = %s\n", in.Name, strconv.FormatFloat(in.Value, 'f', -1, 64))
	}
	for _, m := range res.Metrics {
		printMetric("  %s = %s\n", m.Name, strconv.FormatFloat(m.Value, 'f', precision, 64))
	}
	printMuted("  %s\n", res.Formula)
}
