package documents

import (
	"time"

	"gorm.io/datatypes"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/extract"
)

// Document represents an analyzed document and its extraction result.
type Document struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Filename   string         `json:"filename" gorm:"type:text;not null"`
	StorageKey string         `json:"storage_key" gorm:"type:text;not null"`
	DocType    string         `json:"doc_type" gorm:"type:text;index"`
	Extracted  datatypes.JSON `json:"extracted" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (Document) TableName() string {
	return "documents"
}

// AnalyzeInput carries everything the analysis pipeline needs for one upload.
type AnalyzeInput struct {
	Filename    string
	Data        []byte
	Description string

	// Text is OCR output produced upstream. When set it wins over the
	// text extraction providers.
	Text string

	// DocType optionally pre-classifies the document; empty means
	// classify here.
	DocType extract.DocType

	// Upstream fields are authoritative and override heuristic results
	// field by field.
	Upstream extract.Fields
}

// ExtractedPayload is what gets persisted in the document's jsonb column and
// returned to the caller.
type ExtractedPayload struct {
	Analysis    extract.Analysis `json:"analysis"`
	Description string           `json:"description,omitempty"`
	Text        string           `json:"text,omitempty"`
}
