package csvfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	header, rows, err := ParseCSV([]byte("nombre,edad\nAna,30\nLuis,25\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"nombre", "edad"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"nombre": "Ana", "edad": "30"}, rows[0])
	assert.Equal(t, map[string]string{"nombre": "Luis", "edad": "25"}, rows[1])
}

func TestParseCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("nombre\nAna\n")...)

	header, rows, err := ParseCSV(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"nombre"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["nombre"])
}

func TestParseCSVPadsShortRows(t *testing.T) {
	_, rows, err := ParseCSV([]byte("a,b,c\n1,2\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["c"])
}

func TestParseCSVNoContent(t *testing.T) {
	_, _, err := ParseCSV([]byte(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestParseCSVMalformedQuotes(t *testing.T) {
	_, _, err := ParseCSV([]byte("a,b\n\"broken,2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestValidateCleanFile(t *testing.T) {
	header, rows, err := ParseCSV([]byte("nombre,edad\nAna,30\nLuis,25\n"))
	require.NoError(t, err)

	summary := Validate(header, rows)
	assert.Equal(t, 2, summary.RowCount)
	assert.Equal(t, []string{"nombre", "edad"}, summary.Columns)
	assert.Empty(t, summary.Issues)
}

func TestValidateEmptyValues(t *testing.T) {
	header, rows, err := ParseCSV([]byte("nombre,edad\nAna,\n,25\nLuis,40\n"))
	require.NoError(t, err)

	summary := Validate(header, rows)
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, "Filas con valores vacíos: [0 1]", summary.Issues[0])
}

func TestValidateDuplicateRows(t *testing.T) {
	header, rows, err := ParseCSV([]byte("nombre,edad\nAna,30\nLuis,25\nAna,30\nAna,30\n"))
	require.NoError(t, err)

	summary := Validate(header, rows)
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, "Filas duplicadas: [2 3]", summary.Issues[0])
}

func TestValidateReportsBothIssues(t *testing.T) {
	header, rows, err := ParseCSV([]byte("a,b\nx,\nx,\n"))
	require.NoError(t, err)

	summary := Validate(header, rows)
	require.Len(t, summary.Issues, 2)
	assert.Contains(t, summary.Issues[0], "vacíos")
	assert.Contains(t, summary.Issues[1], "duplicadas")
}
