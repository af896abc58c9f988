package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFile describes a file persisted by a provider.
type StoredFile struct {
	Key         string `json:"key"`          // Provider-specific storage key
	ContentType string `json:"content_type"` // Detected MIME type
}

// Provider defines the interface for object storage backends
type Provider interface {
	// Save persists the file content and returns its storage key
	Save(ctx context.Context, file io.Reader, filename string) (*StoredFile, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// storageKey builds a collision-free key under uploads/, keeping the
// original extension.
func storageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return "uploads/" + uuid.New().String() + ext
}

// detectContentType detects the content type based on file extension
func detectContentType(filename string) string {
	contentTypes := map[string]string{
		".csv":  "text/csv",
		".txt":  "text/plain",
		".pdf":  "application/pdf",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	return "application/octet-stream"
}
