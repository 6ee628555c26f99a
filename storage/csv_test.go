package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"airbnb-etl/models"
)

func TestCSVReaderParsesQuotedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.csv")
	content := "id,name,description,price\n" +
		"1,\"Loft, downtown\",\"line one\nline two\",$85\n" +
		"2,Cabin,plain,$120\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := NewCSVReader(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records; want 2", len(records))
	}

	if got := records[0].Get("name"); got != "Loft, downtown" {
		t.Errorf("quoted delimiter: name = %q", got)
	}
	if got := records[0].Get("description"); got != "line one\nline two" {
		t.Errorf("embedded newline: description = %q", got)
	}
	if got := records[1].Get("price"); got != "$120" {
		t.Errorf("price = %q; want $120", got)
	}
}

func TestCSVReaderShortRowsLeaveColumnsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	content := "id,name,price\n1,Loft\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := NewCSVReader(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].Has("price") {
		t.Error("price should be absent on a short row")
	}
	if !records[0].Has("name") {
		t.Error("name should be present")
	}
}

func TestCSVReaderKeepsHeaderOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hdr.csv")
	if err := os.WriteFile(path, []byte("c,a,b\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewCSVReader(path)
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, name := range r.Header() {
		if name != want[i] {
			t.Errorf("header[%d] = %q; want %q", i, name, want[i])
		}
	}
}

func TestCSVWriterColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path, false)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	rec := &models.CleanedRecord{ID: "10", Name: "Suite", Price: 1200.5, PriceCategory: "luxury"}
	if err := w.Write([]*models.CleanedRecord{rec}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want header + 1 row", len(lines))
	}

	header := strings.Split(lines[0], ",")
	cols := models.Columns(false)
	if len(header) != len(cols) {
		t.Fatalf("header has %d columns; want %d", len(header), len(cols))
	}
	if header[0] != "id" || header[len(header)-1] != "price_per_guest" {
		t.Errorf("header order wrong: first %q, last %q", header[0], header[len(header)-1])
	}
	if !strings.HasPrefix(lines[1], "10,") {
		t.Errorf("row = %q; want leading id 10", lines[1])
	}
}

func TestCSVWriterSequentialIDPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.csv")

	w, err := NewCSVWriter(path, true)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	rec := &models.CleanedRecord{ID: "10", Price: 50, SequentialID: 1}
	if err := w.Write([]*models.CleanedRecord{rec}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if !strings.HasPrefix(lines[0], "sequential_id,id,") {
		t.Errorf("header = %q; want sequential_id prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,10,") {
		t.Errorf("row = %q; want sequential id then id", lines[1])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := OutputName(dir, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC))
	if filepath.Base(path) != "clean_listings_20250301_123000.csv" {
		t.Fatalf("OutputName = %q", path)
	}

	w, err := NewCSVWriter(path, false)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	recs := []*models.CleanedRecord{
		{ID: "1", Name: "A, with comma", Price: 85.5},
		{ID: "2", Name: "B", Price: 120},
	}
	if err := w.Write(recs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	back, err := NewCSVReader(path).Read()
	if err != nil {
		t.Fatalf("Read back: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("got %d records; want 2", len(back))
	}
	if back[0].Get("name") != "A, with comma" {
		t.Errorf("name = %q; comma not preserved", back[0].Get("name"))
	}
	if back[0].Get("price") != "85.5" {
		t.Errorf("price = %q; want 85.5", back[0].Get("price"))
	}
}
