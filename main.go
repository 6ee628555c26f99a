package main

import (
	"fmt"
	"os"
	"time"

	"airbnb-etl/config"
	"airbnb-etl/services"
	"airbnb-etl/storage"
	"airbnb-etl/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Listings Cleaning Pipeline starting ===")
	logger.Info("Config — input: %s | output: %s | workers: %d | sequential ids: %v",
		cfg.InputPath, cfg.OutputDir, cfg.Workers, cfg.AssignSequentialIDs)

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		logger.Error("Failed to load transform rules: %v", err)
		os.Exit(1)
	}

	reader := storage.NewCSVReader(cfg.InputPath)
	rawRecords, err := reader.Read()
	if err != nil {
		logger.Error("Failed to read raw listings: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d raw records from %s", len(rawRecords), cfg.InputPath)

	pipeline := services.NewPipeline(
		services.NewTransformer(rules), logger, cfg.Workers, cfg.AssignSequentialIDs)
	result := pipeline.Run(rawRecords)

	if result.Accepted == 0 {
		logger.Error("No valid records after cleaning. Exiting.")
		os.Exit(1)
	}

	outputPath := storage.OutputName(cfg.OutputDir, time.Now())
	csvWriter, err := storage.NewCSVWriter(outputPath, cfg.AssignSequentialIDs)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	if err := csvWriter.Write(result.Records); err != nil {
		logger.Error("CSV write failed: %v", err)
		_ = csvWriter.Close()
		os.Exit(1)
	}
	if err := csvWriter.Close(); err != nil {
		logger.Error("CSV close failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Clean listings saved to %s", outputPath)

	if cfg.WriteXLSX {
		xlsxPath := outputPath[:len(outputPath)-len(".csv")] + ".xlsx"
		xlsxWriter := storage.NewXLSXWriter(xlsxPath, cfg.AssignSequentialIDs)
		if err := xlsxWriter.Write(result.Records); err != nil {
			logger.Error("XLSX write failed: %v", err)
		} else {
			logger.Info("Clean listings exported to %s", xlsxPath)
		}
	}

	if cfg.WriteDB {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), cfg.MaxRetries, logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Partial metrics: %d raw, %d accepted, %d rejected, %d errored",
				result.Raw, result.Accepted, result.Rejected, result.Errored)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(result.Records); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
			logger.Error("Partial metrics: %d raw, %d accepted, %d rejected, %d errored",
				result.Raw, result.Accepted, result.Rejected, result.Errored)
			os.Exit(1)
		}
		logger.Info("Clean listings loaded into PostgreSQL (table: listings_clean)")
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(result.Records)
	insightSvc.Print(report)

	fmt.Printf("  Done. %d accepted / %d raw (%d rejected, %d errored) in %s → %s\n\n",
		result.Accepted, result.Raw, result.Rejected, result.Errored,
		result.Elapsed.Round(time.Millisecond), outputPath)
}
