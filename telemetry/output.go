package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Output appends window stats to a CSV stream.
type Output struct {
	w      io.Writer
	closer io.Closer

	// Track if headers have been written
	headerWritten bool
}

// NewOutput writes to w. The caller owns w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// CreateOutput creates the CSV file at path, making its directory if needed.
// Returns nil if path is empty (output disabled).
func CreateOutput(path string) (*Output, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Output{w: f, closer: f}, nil
}

// Write appends one record.
func (o *Output) Write(stats WindowStats) error {
	if o == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !o.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, o.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	// Subsequent writes skip headers
	if err := gocsv.MarshalWithoutHeaders(records, o.w); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close closes the file opened by CreateOutput.
func (o *Output) Close() error {
	if o == nil || o.closer == nil {
		return nil
	}
	return o.closer.Close()
}
