package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnNumberToName(t *testing.T) {
	assert.Equal(t, "A", columnNumberToName(1))
	assert.Equal(t, "Z", columnNumberToName(26))
	assert.Equal(t, "AA", columnNumberToName(27))
}

func TestExcelExporterRoundTrip(t *testing.T) {
	exporter := NewExcelExporter()

	data := &ExportData{
		SheetName: "Eventos",
		Headers:   []string{"ID", "Tipo", "Descripción"},
		Rows: [][]interface{}{
			{1, "UPLOAD_CSV", "archivo ventas.csv"},
			{2, "DOC_ANALYSIS", "factura_001.pdf"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(data, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Eventos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Tipo", "Descripción"}, rows[0])
	assert.Equal(t, "UPLOAD_CSV", rows[1][1])
}
