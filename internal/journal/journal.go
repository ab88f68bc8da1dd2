// Package journal appends computed results to a human-readable log file.
package journal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"geocalc/internal/geometry"
)

// DefaultFilename is the journal file created in the working directory when
// no explicit path is configured.
const DefaultFilename = "geometry_results.txt"

// Writer appends result blocks to a single log file. A Writer with an empty
// path is disabled and appends nothing. Writer is safe for concurrent use:
// each append takes the mutex, opens the file in append mode, writes the
// whole block in one call and closes the handle again, so blocks from
// concurrent appends never interleave.
type Writer struct {
	mu      sync.Mutex
	path    string
	session string
	now     func() time.Time
}

// NewWriter returns a Writer appending to path, stamping each block with the
// given session id.
func NewWriter(path, session string) *Writer {
	return &Writer{path: path, session: session, now: time.Now}
}

// Enabled reports whether appends will be written anywhere.
func (w *Writer) Enabled() bool {
	return w != nil && w.path != ""
}

// Path returns the journal destination, empty when disabled.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Append writes one result block. A failure leaves previously written
// blocks untouched and is returned for the caller to report; the computed
// result itself is never affected.
func (w *Writer) Append(res geometry.Result) error {
	if !w.Enabled() {
		return nil
	}
	block := w.format(res)

	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	_, werr := f.WriteString(block)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("append journal: %w", werr)
	}
	return nil
}

func (w *Writer) format(res geometry.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s [%s] %s session %s ===\n",
		res.Title, res.Category, w.now().UTC().Format(time.RFC3339), w.session)
	for _, in := range res.Inputs {
		fmt.Fprintf(&b, "  %s = %s\n", in.Name, formatValue(in.Value))
	}
	for _, m := range res.Metrics {
		fmt.Fprintf(&b, "  %s = %s\n", m.Name, formatValue(m.Value))
	}
	fmt.Fprintf(&b, "  formula: %s\n\n", res.Formula)
	return b.String()
}

// formatValue keeps full float precision; display rounding is a UI concern.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
