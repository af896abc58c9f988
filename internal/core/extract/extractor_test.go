package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLines(t *testing.T) {
	lines := NormalizeLines("  Cliente:   Acme \t Corp \r\n\r\n\n  Total   999,00  \n")

	require.Equal(t, []string{"Cliente: Acme Corp", "Total 999,00"}, lines)
}

func TestNormalizeLinesEmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeLines(""))
	assert.Empty(t, NormalizeLines("   \r\n \t \n"))
}

func TestExtractEmptyAndNoise(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "\r\n\t  \n"},
		{"garbled", "qwerty ~~ lorem ipsum dolor sit amet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract(tt.text)
			assert.True(t, fields.IsEmpty(), "expected all fields absent, got %+v", fields)
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	text := "Cliente: Acme Corp\nFecha de emisión: 15/03/2024\nImporte Total 1.234,56"

	first := Extract(text)
	second := Extract(text)

	require.Equal(t, first, second)
}

func TestClientInlineAndNextLine(t *testing.T) {
	inline := Extract("Cliente: Acme Corp")
	require.Equal(t, "Acme Corp", inline.Client)

	nextLine := Extract("Cliente\nAcme Corp")
	require.Equal(t, "Acme Corp", nextLine.Client)
}

func TestClientFirstMatchWins(t *testing.T) {
	fields := Extract("Cliente: Acme Corp\nCliente: Otro Cliente SA")

	assert.Equal(t, "Acme Corp", fields.Client)
}

func TestClientPreservesCasing(t *testing.T) {
	fields := Extract("CLIENTE: AcMe CoRp")

	assert.Equal(t, "AcMe CoRp", fields.Client)
}

func TestClientLabelWithoutValue(t *testing.T) {
	fields := Extract("Cliente:")

	assert.Empty(t, fields.Client)
}

func TestProviderRazonSocial(t *testing.T) {
	inline := Extract("Razón Social: Distribuidora Sur SRL")
	assert.Equal(t, "Distribuidora Sur SRL", inline.Provider)

	nextLine := Extract("Razon Social\nDistribuidora Sur SRL")
	assert.Equal(t, "Distribuidora Sur SRL", nextLine.Provider)
}

func TestProviderEmisorTwoLinesBelow(t *testing.T) {
	// Proforma-style header: the issuer name sits two lines under "Emisor".
	fields := Extract("Emisor\nCUIT 30-11222333-4\nLogística Norte SA\nDomicilio Av. Siempre Viva 123")

	assert.Equal(t, "Logística Norte SA", fields.Provider)
}

func TestProviderRazonSocialBeatsEmisorOnSameLine(t *testing.T) {
	// Blank-line compaction puts both labels on one line here; the razón
	// social family must win.
	fields := Extract("Razón Social: Uno SA Emisor\nDos SRL\nTres SRL")

	assert.Equal(t, "Uno SA Emisor", fields.Provider)
}

func TestNumberComprobante(t *testing.T) {
	fields := Extract("Comprobante: 0001-00001234")

	assert.Equal(t, "0001-00001234", fields.Number)
}

func TestNumberFacturaVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"N° Factura: X-9", "X-9"},
		{"Nro. Factura A-0042", "A-0042"},
		{"Número de Factura: 77/2024", "77/2024"},
		{"Factura N° 000123", "000123"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Number)
		})
	}
}

func TestNumberComprobanteBeatsFactura(t *testing.T) {
	// The factura line appears first on the page; comprobante still wins.
	fields := Extract("N° Factura: X-9\nDetalle\nComprobante: 0001-00001234")

	assert.Equal(t, "0001-00001234", fields.Number)
}

func TestDateLabeledEmission(t *testing.T) {
	tests := []string{
		"Fecha de emisión: 15/03/2024",
		"Fecha emisión 15/03/2024",
		"Fecha de emision 15-03-2024",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.NotEmpty(t, Extract(text).Date)
		})
	}
}

func TestDateLabeledBeatsStray(t *testing.T) {
	fields := Extract("Vencimiento 01/01/2025\nFecha de emisión: 15/03/2024")

	assert.Equal(t, "15/03/2024", fields.Date)
}

func TestDateFallbackAnywhere(t *testing.T) {
	fields := Extract("Algún texto\n15/03/2024\nmás texto")

	assert.Equal(t, "15/03/2024", fields.Date)
}

func TestTotalImporteTotalWins(t *testing.T) {
	fields := Extract("Importe Total 1.234,56\nTotal 999,00")

	assert.Equal(t, "1.234,56", fields.Total)
}

func TestTotalSubtotalAndConLetrasExcluded(t *testing.T) {
	fields := Extract("Subtotal 500,00\nTotal con letras: quinientos")

	assert.Empty(t, fields.Total)
}

func TestTotalGenericInlineAndNextLine(t *testing.T) {
	inline := Extract("Total 999,00")
	assert.Equal(t, "999,00", inline.Total)

	nextLine := Extract("Total\n999,00")
	assert.Equal(t, "999,00", nextLine.Total)
}

func TestTotalLastMatchingLineWins(t *testing.T) {
	fields := Extract("Total 100,00\nTotal 250,50")
	assert.Equal(t, "250,50", fields.Total)

	importe := Extract("Importe Total 100,00\nImporte Total 250,50")
	assert.Equal(t, "250,50", importe.Total)
}

func TestMergeUpstreamWins(t *testing.T) {
	heuristic := Fields{Client: "Acme Corp", Total: "999,00", Date: "15/03/2024"}
	upstream := Fields{Client: "Acme Corporation SA", Number: "A-1"}

	merged := Merge(upstream, heuristic)

	assert.Equal(t, "Acme Corporation SA", merged.Client)
	assert.Equal(t, "A-1", merged.Number)
	assert.Equal(t, "999,00", merged.Total)
	assert.Equal(t, "15/03/2024", merged.Date)
}

func TestExtractFullInvoice(t *testing.T) {
	text := `FACTURA
Comprobante: 0001-00001234
Fecha de emisión: 15/03/2024
Cliente: Acme Corp
Razón Social: Distribuidora Sur SRL
Subtotal 1.100,00
IVA 134,56
Importe Total 1.234,56
Total con letras: mil doscientos treinta y cuatro con 56/100`

	fields := Extract(text)

	require.Equal(t, Fields{
		Client:   "Acme Corp",
		Provider: "Distribuidora Sur SRL",
		Number:   "0001-00001234",
		Date:     "15/03/2024",
		Total:    "1.234,56",
	}, fields)
}
