package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"airbnb-etl/models"
	"airbnb-etl/utils"
)

// PostgresWriter loads cleaned listings into the reporting warehouse and
// serves the read-only reporting queries over them.
type PostgresWriter struct {
	db *sql.DB
}

// WarehouseSummary is the headline aggregate row of the reporting layer.
type WarehouseSummary struct {
	TotalListings int
	AvgPrice      float64
	MinPrice      float64
	MaxPrice      float64
	AvgRating     float64
}

// NewPostgresWriter opens a connection to PostgreSQL, pinging up to
// maxAttempts times with backoff, runs schema migrations, and returns a
// ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, maxAttempts int, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if maxAttempts < 1 {
		maxAttempts = 1
	}
	retry := &utils.RetryConfig{MaxAttempts: maxAttempts, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings_clean (
			id                    VARCHAR(32)   PRIMARY KEY,
			name                  TEXT          NOT NULL DEFAULT '',
			neighbourhood         TEXT          NOT NULL DEFAULT '',
			city                  TEXT          NOT NULL DEFAULT '',
			room_type_simplified  VARCHAR(16)   NOT NULL DEFAULT 'Other',
			price                 NUMERIC(10,2) NOT NULL DEFAULT 0,
			price_category        VARCHAR(16)   NOT NULL DEFAULT 'unknown',
			review_category       VARCHAR(16)   NOT NULL DEFAULT 'no_reviews',
			host_category         VARCHAR(16)   NOT NULL DEFAULT 'low_response',
			availability_category VARCHAR(32)   NOT NULL DEFAULT 'not_available',
			number_of_reviews     INTEGER       NOT NULL DEFAULT 0,
			review_scores_rating  NUMERIC(5,2)  NOT NULL DEFAULT 0,
			host_is_superhost     SMALLINT      NOT NULL DEFAULT 0,
			instant_bookable      SMALLINT      NOT NULL DEFAULT 0,
			accommodates          INTEGER       NOT NULL DEFAULT 0,
			price_per_guest       NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_professional_host  SMALLINT      NOT NULL DEFAULT 0,
			loaded_at             TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_clean_price         ON listings_clean(price);
		CREATE INDEX IF NOT EXISTS idx_clean_neighbourhood ON listings_clean(neighbourhood);
		CREATE INDEX IF NOT EXISTS idx_clean_category      ON listings_clean(price_category);
	`)
	return err
}

// Clear deletes all existing rows from the warehouse table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM listings_clean")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all cleaned records, clearing old data first.
func (pw *PostgresWriter) Write(records []*models.CleanedRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

const insertColumns = 17

func (pw *PostgresWriter) insertBatch(batch []*models.CleanedRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*insertColumns)

	for idx, r := range batch {
		base := idx * insertColumns
		marks := make([]string, insertColumns)
		for j := range marks {
			marks[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(marks, ",")+")")
		valueArgs = append(valueArgs,
			r.ID, r.Name, r.Neighbourhood, r.City, r.RoomTypeSimplified,
			r.Price, r.PriceCategory, r.ReviewCategory, r.HostCategory,
			r.AvailabilityCategory, r.NumberOfReviews, r.ReviewScoresRating,
			r.HostIsSuperhost, r.InstantBookable, r.Accommodates,
			r.PricePerGuest, r.IsProfessionalHost)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings_clean (
			id, name, neighbourhood, city, room_type_simplified,
			price, price_category, review_category, host_category,
			availability_category, number_of_reviews, review_scores_rating,
			host_is_superhost, instant_bookable, accommodates,
			price_per_guest, is_professional_host
		)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// Summary runs the headline aggregate query over the warehouse table.
func (pw *PostgresWriter) Summary() (*WarehouseSummary, error) {
	s := &WarehouseSummary{}
	err := pw.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(price), 0),
		       COALESCE(MIN(price), 0),
		       COALESCE(MAX(price), 0),
		       COALESCE(AVG(review_scores_rating), 0)
		FROM listings_clean
	`).Scan(&s.TotalListings, &s.AvgPrice, &s.MinPrice, &s.MaxPrice, &s.AvgRating)
	if err != nil {
		return nil, fmt.Errorf("postgres: summary: %w", err)
	}
	return s, nil
}

// TopNeighbourhoods returns the busiest neighbourhoods by listing count.
func (pw *PostgresWriter) TopNeighbourhoods(limit int) ([]models.NeighbourhoodStat, error) {
	rows, err := pw.db.Query(`
		SELECT neighbourhood,
		       COUNT(*),
		       COALESCE(AVG(price), 0),
		       COALESCE(AVG(review_scores_rating), 0)
		FROM listings_clean
		WHERE neighbourhood <> ''
		GROUP BY neighbourhood
		ORDER BY COUNT(*) DESC, neighbourhood
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: top neighbourhoods: %w", err)
	}
	defer rows.Close()

	var stats []models.NeighbourhoodStat
	for rows.Next() {
		var s models.NeighbourhoodStat
		if err := rows.Scan(&s.Neighbourhood, &s.Listings, &s.AvgPrice, &s.AvgRating); err != nil {
			return nil, fmt.Errorf("postgres: scan neighbourhood: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// PriceCategories returns the listing distribution per price bucket.
func (pw *PostgresWriter) PriceCategories() ([]models.CategoryStat, error) {
	rows, err := pw.db.Query(`
		SELECT price_category,
		       COUNT(*),
		       COALESCE(AVG(price), 0),
		       COALESCE(AVG(review_scores_rating), 0)
		FROM listings_clean
		GROUP BY price_category
		ORDER BY COUNT(*) DESC, price_category
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: price categories: %w", err)
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.Listings, &s.AvgPrice, &s.AvgRating); err != nil {
			return nil, fmt.Errorf("postgres: scan category: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// RoomTypes returns the listing distribution per simplified room type.
func (pw *PostgresWriter) RoomTypes() ([]models.CategoryStat, error) {
	rows, err := pw.db.Query(`
		SELECT room_type_simplified,
		       COUNT(*),
		       COALESCE(AVG(price), 0),
		       COALESCE(AVG(review_scores_rating), 0)
		FROM listings_clean
		GROUP BY room_type_simplified
		ORDER BY COUNT(*) DESC, room_type_simplified
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: room types: %w", err)
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.Listings, &s.AvgPrice, &s.AvgRating); err != nil {
			return nil, fmt.Errorf("postgres: scan room type: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
