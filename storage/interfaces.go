package storage

import "airbnb-etl/models"

// RecordSource yields the ordered raw record sequence for one pipeline run.
type RecordSource interface {
	Read() ([]models.RawRecord, error)
}

// RecordWriter is the interface any cleaned-record sink must satisfy.
type RecordWriter interface {
	Write(records []*models.CleanedRecord) error
	Close() error
}
