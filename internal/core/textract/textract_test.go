package textract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePlainText(t *testing.T) {
	svc := NewService()

	text, err := svc.ExtractText(context.Background(), []byte("Cliente: Acme Corp\n"), "doc.txt")
	require.NoError(t, err)
	assert.Equal(t, "Cliente: Acme Corp\n", text)
}

func TestServiceUnsupportedFormatYieldsEmpty(t *testing.T) {
	svc := NewService()

	text, err := svc.ExtractText(context.Background(), []byte{0xFF, 0xD8}, "scan.jpg")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestPDFProviderRejectsGarbage(t *testing.T) {
	provider := NewPDFProvider()

	require.True(t, provider.CanHandle("invoice.PDF"))
	require.False(t, provider.CanHandle("invoice.txt"))

	_, err := provider.ExtractText(context.Background(), []byte("not a pdf"))
	assert.Error(t, err)
}
