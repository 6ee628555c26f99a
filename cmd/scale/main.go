// Command scale multiplies a raw listings CSV for load testing. Each copy
// offsets numeric ids by copy × max(id) and rewrites /rooms/<id> URLs to
// match, so the scaled file still looks like distinct listings. It is not
// part of the transformation contract.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"airbnb-etl/storage"
	"airbnb-etl/utils"
)

func main() {
	var (
		inPath     = flag.String("in", "./data/listings.csv", "raw CSV to scale")
		outPath    = flag.String("out", "./data/listings_scaled.csv", "scaled CSV destination")
		multiplier = flag.Int("multiplier", 2, "number of copies to emit")
	)
	flag.Parse()

	logger := utils.NewLogger()
	if *multiplier < 1 {
		logger.Error("multiplier must be at least 1, got %d", *multiplier)
		os.Exit(1)
	}

	reader := storage.NewCSVReader(*inPath)
	rows, err := reader.Read()
	if err != nil {
		logger.Error("Failed to read %s: %v", *inPath, err)
		os.Exit(1)
	}
	header := reader.Header()
	logger.Info("Read %d records from %s", len(rows), *inPath)

	maxID := 0
	for _, row := range rows {
		if id, err := strconv.Atoi(strings.TrimSpace(row.Get("id"))); err == nil && id > maxID {
			maxID = id
		}
	}
	logger.Info("Max original id: %d — scaling to %dx", maxID, *multiplier)

	out, err := os.Create(*outPath)
	if err != nil {
		logger.Error("Failed to create %s: %v", *outPath, err)
		os.Exit(1)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		logger.Error("Failed to write header: %v", err)
		os.Exit(1)
	}

	written := 0
	for copyNum := 0; copyNum < *multiplier; copyNum++ {
		offset := maxID * copyNum
		for _, row := range rows {
			scaled := scaleRow(row, header, offset)
			if err := w.Write(scaled); err != nil {
				logger.Error("Failed to write row: %v", err)
				os.Exit(1)
			}
			written++
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Flush failed: %v", err)
		os.Exit(1)
	}

	logger.Info("Wrote %d records to %s", written, *outPath)
	fmt.Printf("  Done. %d → %d records (%dx)\n", len(rows), written, *multiplier)
}

// scaleRow renders one copy of a raw row with its id offset applied.
// Rows with non-numeric ids are copied unchanged.
func scaleRow(row map[string]string, header []string, offset int) []string {
	originalID := strings.TrimSpace(row["id"])
	newID := originalID
	if id, err := strconv.Atoi(originalID); err == nil && offset > 0 {
		newID = strconv.Itoa(id + offset)
	}

	out := make([]string, len(header))
	for i, name := range header {
		value := row[name]
		switch name {
		case "id":
			value = newID
		case "listing_url":
			if newID != originalID && originalID != "" {
				value = strings.Replace(value, "/rooms/"+originalID, "/rooms/"+newID, 1)
			}
		}
		out[i] = value
	}
	return out
}
