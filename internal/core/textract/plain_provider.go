package textract

import "context"

// PlainTextProvider passes .txt uploads through untouched.
type PlainTextProvider struct{}

// NewPlainTextProvider creates a new plain text provider
func NewPlainTextProvider() *PlainTextProvider {
	return &PlainTextProvider{}
}

// CanHandle reports whether the file is plain text
func (p *PlainTextProvider) CanHandle(filename string) bool {
	return hasExt(filename, ".txt")
}

// ExtractText returns the document bytes as-is
func (p *PlainTextProvider) ExtractText(ctx context.Context, data []byte) (string, error) {
	return string(data), nil
}

// GetProviderName returns the provider name
func (p *PlainTextProvider) GetProviderName() string {
	return "plaintext"
}
