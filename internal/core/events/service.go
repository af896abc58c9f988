package events

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Service provides event logging and history queries
type Service struct {
	db *gorm.DB
}

// NewService creates a new event service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record appends an event to the history.
func (s *Service) Record(ctx context.Context, eventType, description string) error {
	event := EventLog{
		EventType:   eventType,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// List retrieves events matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]EventLog, error) {
	query := s.db.WithContext(ctx).Model(&EventLog{})

	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	var events []EventLog
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
