package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"airbnb-etl/models"
)

// CSVWriter writes cleaned records to a CSV file in the fixed output column
// order. It is safe for concurrent use.
type CSVWriter struct {
	mu      sync.Mutex
	file    *os.File
	writer  *csv.Writer
	withSeq bool
}

// OutputName returns a timestamped file name for one run's cleaned output.
func OutputName(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("clean_listings_%s.csv", now.Format("20060102_150405")))
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
// withSequentialID prefixes the column order with sequential_id.
func NewCSVWriter(path string, withSequentialID bool) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(models.Columns(withSequentialID)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w, withSeq: withSequentialID}, nil
}

// Write appends one row per cleaned record.
func (c *CSVWriter) Write(records []*models.CleanedRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range records {
		if err := c.writer.Write(rec.Row(c.withSeq)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
