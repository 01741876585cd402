// Package telemetry records headless runs: a per-tick CSV trace and an
// aggregate summary across rounds.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TraceRecord is one row of the per-tick trace.
type TraceRecord struct {
	Round     int     `csv:"round"`
	Tick      int     `csv:"tick"`
	Time      float64 `csv:"time"`
	Phase     string  `csv:"phase"`
	ActorY    float64 `csv:"actor_y"`
	ActorDY   float64 `csv:"actor_dy"`
	Obstacles int     `csv:"obstacles"`
	Score     int     `csv:"score"`
}

// TraceWriter streams TraceRecords as CSV. The header is written with the
// first record. A nil *TraceWriter discards everything.
type TraceWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewTraceWriter writes CSV to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

// CreateTrace opens path for writing, creating parent directories.
// An empty path disables tracing and returns nil.
func CreateTrace(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating trace: %w", err)
	}
	return &TraceWriter{w: f, closer: f}, nil
}

// Write appends one record.
func (t *TraceWriter) Write(rec TraceRecord) error {
	if t == nil {
		return nil
	}

	records := []TraceRecord{rec}
	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("telemetry: writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
			return fmt.Errorf("telemetry: writing trace: %w", err)
		}
	}
	t.rows++
	return nil
}

// Rows returns how many records have been written.
func (t *TraceWriter) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Close closes the underlying file when the writer owns one.
func (t *TraceWriter) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// ReadTrace parses a trace previously produced by TraceWriter.
func ReadTrace(r io.Reader) ([]TraceRecord, error) {
	var out []TraceRecord
	if err := gocsv.Unmarshal(r, &out); err != nil {
		return nil, fmt.Errorf("telemetry: reading trace: %w", err)
	}
	return out, nil
}
