package csvfiles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/events"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/storage"
)

// Service runs the CSV ingestion pipeline: store, validate, persist rows,
// record event.
type Service struct {
	db     *gorm.DB
	store  storage.Provider
	events *events.Service
}

// NewService creates a new csvfiles service
func NewService(db *gorm.DB, store storage.Provider, events *events.Service) *Service {
	return &Service{
		db:     db,
		store:  store,
		events: events,
	}
}

// UploadInput carries one CSV upload through the pipeline.
type UploadInput struct {
	Filename    string
	Data        []byte
	DatasetName string
	Description string
}

// UploadResult is the pipeline output for one upload.
type UploadResult struct {
	File       CsvFile
	Stored     *storage.StoredFile
	Provider   string
	Validation ValidationSummary
}

// Upload stores the file, validates its content, persists the file record
// together with one CsvRow per data row and records the upload event. Parse
// failures come back wrapped in ErrInvalidCSV so callers can distinguish bad
// input from infrastructure errors.
func (s *Service) Upload(ctx context.Context, in UploadInput, userID uint) (*UploadResult, error) {
	header, rows, err := ParseCSV(in.Data)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Save(ctx, bytes.NewReader(in.Data), in.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store csv file: %w", err)
	}

	validation := Validate(header, rows)
	validationJSON, err := json.Marshal(validation)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize validation summary: %w", err)
	}

	record := CsvFile{
		Filename:          in.Filename,
		DatasetName:       in.DatasetName,
		Description:       in.Description,
		StorageKey:        stored.Key,
		UploadedBy:        userID,
		ValidationSummary: validationJSON,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to persist csv file: %w", err)
		}
		for i, row := range rows {
			rowJSON, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to serialize row %d: %w", i+1, err)
			}
			csvRow := CsvRow{
				FileID:    record.ID,
				RowNumber: i + 1,
				Data:      rowJSON,
			}
			if err := tx.Create(&csvRow).Error; err != nil {
				return fmt.Errorf("failed to persist row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf(
		"Archivo %s subido por usuario %d (%s:%s), dataset='%s'",
		in.Filename, userID, s.store.GetProviderName(), stored.Key, in.DatasetName,
	)
	if err := s.events.Record(ctx, events.TypeUploadCSV, description); err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	return &UploadResult{
		File:       record,
		Stored:     stored,
		Provider:   s.store.GetProviderName(),
		Validation: validation,
	}, nil
}
