package csvfiles

import (
	"time"

	"gorm.io/datatypes"
)

// CsvFile represents an uploaded CSV dataset
type CsvFile struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Filename          string         `json:"filename" gorm:"type:text;not null"`
	DatasetName       string         `json:"dataset_name" gorm:"type:text"`
	Description       string         `json:"description" gorm:"type:text"`
	StorageKey        string         `json:"storage_key" gorm:"type:text;not null"`
	UploadedBy        uint           `json:"uploaded_by" gorm:"index"`
	ValidationSummary datatypes.JSON `json:"validation_summary" gorm:"type:jsonb"`
	UploadedAt        time.Time      `json:"uploaded_at" gorm:"index;autoCreateTime"`
}

// TableName specifies the table name
func (CsvFile) TableName() string {
	return "csv_files"
}

// CsvRow holds one parsed record of an uploaded CSV, keyed by header.
type CsvRow struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	FileID    uint           `json:"file_id" gorm:"index;not null"`
	RowNumber int            `json:"row_number" gorm:"not null"`
	Data      datatypes.JSON `json:"data" gorm:"type:jsonb"`
}

// TableName specifies the table name
func (CsvRow) TableName() string {
	return "csv_rows"
}
