package textract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFProvider reads the text layer of PDF documents. It does not OCR: PDFs
// without a text layer (pure scans) come out empty.
type PDFProvider struct{}

// NewPDFProvider creates a new PDF text provider
func NewPDFProvider() *PDFProvider {
	return &PDFProvider{}
}

// CanHandle reports whether the file is a PDF
func (p *PDFProvider) CanHandle(filename string) bool {
	return hasExt(filename, ".pdf")
}

// ExtractText extracts the text layer, page by page
func (p *PDFProvider) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A broken page should not lose the rest of the document
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// GetProviderName returns the provider name
func (p *PDFProvider) GetProviderName() string {
	return "pdf"
}
