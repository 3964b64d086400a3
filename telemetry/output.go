// Package telemetry records run progress to CSV as a search executes and
// summarizes the finished run's node-cost distribution.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ProgressRecord is one snapshot of a search in progress; cmd/pathbot
// writes one after every batch of StepSingle calls, the last at termination.
type ProgressRecord struct {
	NodesExpanded int     `csv:"nodes_expanded"`
	BestX         float64 `csv:"best_x"`
	OpenLen       int     `csv:"open_len"`
	ElapsedMs     int64   `csv:"elapsed_ms"`
}

// OutputManager writes progress.csv for a single run. A nil *OutputManager
// is a valid no-op sink, so callers can pass one through unconditionally
// when output was not requested.
type OutputManager struct {
	dir            string
	progressFile   *os.File
	headerWritten  bool
}

// NewOutputManager creates the output directory and opens progress.csv.
// Returns a nil manager (not an error) when dir is empty.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	progressPath := filepath.Join(dir, "progress.csv")
	f, err := os.Create(progressPath)
	if err != nil {
		return nil, fmt.Errorf("creating progress.csv: %w", err)
	}

	return &OutputManager{dir: dir, progressFile: f}, nil
}

// WriteProgress appends one progress record, writing headers on first use.
func (om *OutputManager) WriteProgress(rec ProgressRecord) error {
	if om == nil {
		return nil
	}

	records := []ProgressRecord{rec}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.progressFile); err != nil {
			return fmt.Errorf("writing progress: %w", err)
		}
		om.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, om.progressFile); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}
	return nil
}

// Dir returns the output directory, or "" for a nil manager.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes progress.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.progressFile == nil {
		return nil
	}
	return om.progressFile.Close()
}
