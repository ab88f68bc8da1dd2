package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"geocalc/internal/config"
	"geocalc/internal/geometry"
	"geocalc/internal/journal"
	"geocalc/internal/session"
)

var (
	batchWorkers   int
	batchJSON      bool
	batchNoJournal bool
)

// batchRequest is one entry of a batch file.
type batchRequest struct {
	Shape string             `yaml:"shape"`
	Dims  map[string]float64 `yaml:"dims"`
}

// batchOutcome pairs a request with its result or failure.
type batchOutcome struct {
	Shape   string           `json:"shape"`
	Result  *geometry.Result `json:"result,omitempty"`
	Error   string           `json:"error,omitempty"`
	journal error
}

// batchCmd computes a file of requests
var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Compute a YAML file of shape requests",
	Long: `Reads a YAML list of requests and computes them concurrently. Invalid
requests are reported inline; the remaining results are still printed and
journaled. The exit code is non-zero when any request failed.

File format:
  - shape: circle
    dims:
      radius: 2
  - shape: rectangle
    dims:
      width: 3
      height: 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load(cfgPath)

	reqs, err := loadBatchFile(args[0])
	if err != nil {
		return err
	}

	hist := session.NewHistory()
	journalPath := cfg.JournalPath()
	if batchNoJournal {
		journalPath = ""
	}
	jw := journal.NewWriter(journalPath, hist.ID())

	logger.Info("computing batch",
		zap.Int("requests", len(reqs)),
		zap.Int("workers", batchWorkers))

	outcomes := make([]batchOutcome, len(reqs))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, batchWorkers))
	for i, req := range reqs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			outcomes[i] = computeBatchRequest(req, hist, jw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := printBatchOutcomes(outcomes, cfg.Precision); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Error != "" {
			failed++
		}
	}
	logger.Info("batch complete",
		zap.String("session", hist.ID()),
		zap.Int("succeeded", len(outcomes)-failed),
		zap.Int("failed", failed),
		zap.Any("shapes", hist.Tally()))
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(reqs))
	}
	return nil
}

func loadBatchFile(path string) ([]batchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var reqs []batchRequest
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("batch file %s contains no requests", path)
	}
	return reqs, nil
}

// computeBatchRequest runs one request. A per-request failure lands in the
// outcome; journaling stays best-effort.
func computeBatchRequest(req batchRequest, hist *session.History, jw *journal.Writer) batchOutcome {
	res, err := geometry.Compute(req.Shape, req.Dims)
	if err != nil {
		return batchOutcome{Shape: req.Shape, Error: err.Error()}
	}

	hist.Add(res)
	out := batchOutcome{Shape: res.Shape, Result: &res}
	out.journal = jw.Append(res)
	return out
}

func printBatchOutcomes(outcomes []batchOutcome, precision int) error {
	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcomes)
	}

	for i, o := range outcomes {
		if o.Error != "" {
			printWarn("%d. %s: %s\n", i+1, o.Shape, o.Error)
			continue
		}
		printTitle("%d. ", i+1)
		printResult(*o.Result, precision)
		if o.journal != nil {
			printWarn("   warning: %v\n", o.journal)
		}
	}
	return nil
}
