package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"airbnb-etl/models"
)

// XLSXWriter writes cleaned records to a single-sheet XLSX workbook in the
// same column order as the CSV sink.
type XLSXWriter struct {
	path    string
	withSeq bool
}

// NewXLSXWriter creates a writer targeting the given path.
func NewXLSXWriter(path string, withSequentialID bool) *XLSXWriter {
	return &XLSXWriter{path: path, withSeq: withSequentialID}
}

// Write builds the workbook and saves it. The whole record set is written in
// one shot; calling Write again replaces the file.
func (x *XLSXWriter) Write(records []*models.CleanedRecord) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, name := range models.Columns(x.withSeq) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("xlsx: write header: %w", err)
		}
	}

	for i, rec := range records {
		for j, value := range rec.Row(x.withSeq) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("xlsx: write row %d: %w", i+1, err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(x.path), 0755); err != nil {
		return fmt.Errorf("xlsx: create output dir: %w", err)
	}
	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("xlsx: save %q: %w", x.path, err)
	}
	return nil
}

// Close is a no-op; Write saves the workbook.
func (x *XLSXWriter) Close() error { return nil }
