package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"airbnb-etl/models"
)

// CSVReader reads a header-defined CSV file into RawRecords. Quoted fields
// containing the delimiter or embedded newlines are handled by the codec;
// rows shorter than the header simply leave the trailing columns absent.
type CSVReader struct {
	path   string
	header []string
}

// NewCSVReader creates a reader for the file at path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Read loads the whole file and returns one RawRecord per data row, in file
// order. The header row defines the column names.
func (c *CSVReader) Read() ([]models.RawRecord, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", c.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: %q is empty", c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	c.header = header

	var records []models.RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", len(records)+1, err)
		}

		rec := make(models.RawRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Header returns the column names of the last Read, in file order.
func (c *CSVReader) Header() []string {
	return c.header
}
