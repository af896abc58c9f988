package textract

import (
	"context"
	"path/filepath"
	"strings"
)

// Provider extracts the plain text of one document format.
type Provider interface {
	// CanHandle reports whether the provider understands the file format
	CanHandle(filename string) bool

	// ExtractText extracts plain text from the document bytes
	ExtractText(ctx context.Context, data []byte) (string, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// Service routes a document to the first provider that understands its
// format. Image formats have no text layer and no provider here: for scanned
// documents the caller hands in OCR text produced upstream.
type Service struct {
	providers []Provider
}

// NewService creates a text extraction service with the default providers
func NewService() *Service {
	return &Service{
		providers: []Provider{
			NewPDFProvider(),
			NewPlainTextProvider(),
		},
	}
}

// ExtractText extracts text from the document. Unsupported formats yield an
// empty string rather than an error; downstream analysis degrades gracefully.
func (s *Service) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	for _, p := range s.providers {
		if p.CanHandle(filename) {
			return p.ExtractText(ctx, data)
		}
	}
	return "", nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
