package events

import "time"

// EventLog represents one entry in the system event history.
type EventLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventType   string    `json:"event_type" gorm:"type:text;not null;index"` // UPLOAD_CSV, DOC_ANALYSIS, ...
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (EventLog) TableName() string {
	return "event_logs"
}

// Well-known event types.
const (
	TypeUploadCSV   = "UPLOAD_CSV"
	TypeDocAnalysis = "DOC_ANALYSIS"
)

// Filter represents the optional filters for querying the event history.
type Filter struct {
	EventType   string
	Description string // substring match, case-insensitive
	DateFrom    *time.Time
	DateTo      *time.Time
}
