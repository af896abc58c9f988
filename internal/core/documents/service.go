package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/events"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/extract"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/storage"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/textract"
)

// Service runs the document analysis pipeline: store, extract text, analyze,
// persist, record event.
type Service struct {
	db     *gorm.DB
	store  storage.Provider
	text   *textract.Service
	events *events.Service
}

// NewService creates a new documents service
func NewService(db *gorm.DB, store storage.Provider, text *textract.Service, events *events.Service) *Service {
	return &Service{
		db:     db,
		store:  store,
		text:   text,
		events: events,
	}
}

// AnalyzeResult is the pipeline output for one upload.
type AnalyzeResult struct {
	Document  Document
	Stored    *storage.StoredFile
	Provider  string
	Extracted ExtractedPayload
}

// Analyze stores the upload, obtains its text, runs the heuristic analysis,
// merges upstream fields over the heuristic ones and persists the result.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput, userID uint) (*AnalyzeResult, error) {
	stored, err := s.store.Save(ctx, bytes.NewReader(in.Data), in.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	text := in.Text
	if text == "" {
		text, err = s.text.ExtractText(ctx, in.Data, in.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text: %w", err)
		}
	}

	var analysis extract.Analysis
	if in.DocType != "" {
		analysis = extract.AnalyzeAs(text, in.DocType)
	} else {
		analysis = extract.Analyze(text)
	}

	// Upstream values are authoritative; heuristics only fill gaps.
	if analysis.DocType == extract.DocTypeInvoice {
		analysis.Fields = extract.Merge(in.Upstream, analysis.Fields)
	}

	payload := ExtractedPayload{
		Analysis:    analysis,
		Description: in.Description,
		Text:        text,
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	document := Document{
		Filename:   in.Filename,
		StorageKey: stored.Key,
		DocType:    string(analysis.DocType),
		Extracted:  payloadJSON,
	}
	if err := s.db.WithContext(ctx).Create(&document).Error; err != nil {
		return nil, fmt.Errorf("failed to persist document: %w", err)
	}

	description := fmt.Sprintf(
		"Documento %s (%s) analizado y guardado por usuario %d (%s:%s)",
		in.Filename, analysis.DocType, userID, s.store.GetProviderName(), stored.Key,
	)
	if err := s.events.Record(ctx, events.TypeDocAnalysis, description); err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	return &AnalyzeResult{
		Document:  document,
		Stored:    stored,
		Provider:  s.store.GetProviderName(),
		Extracted: payload,
	}, nil
}

// List returns stored documents, newest first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
