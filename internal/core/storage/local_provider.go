package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalProvider stores files on the local filesystem. Meant for development
// and tests; production uses S3.
type LocalProvider struct {
	baseDir string
}

// NewLocalProvider creates a new local storage provider
func NewLocalProvider(baseDir string) (*LocalProvider, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalProvider{baseDir: baseDir}, nil
}

// Save writes the file under the base directory using the same key scheme
// as the S3 provider
func (p *LocalProvider) Save(ctx context.Context, file io.Reader, filename string) (*StoredFile, error) {
	key := storageKey(filename)

	path := filepath.Join(p.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &StoredFile{
		Key:         key,
		ContentType: detectContentType(filename),
	}, nil
}

// GetProviderName returns the provider name
func (p *LocalProvider) GetProviderName() string {
	return "local"
}
