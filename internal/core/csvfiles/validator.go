package csvfiles

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCSV marks uploads whose content cannot be parsed as CSV.
var ErrInvalidCSV = errors.New("invalid csv content")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV decodes the upload into its header and one map per data row,
// keyed by column name. The UTF-8 BOM that spreadsheet exports commonly
// prepend is tolerated. Ragged rows are padded or truncated to the header
// width instead of failing the whole file.
func ParseCSV(data []byte) ([]string, []map[string]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: no header row", ErrInvalidCSV)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ValidationSummary is the persisted quality report for one uploaded CSV.
type ValidationSummary struct {
	RowCount int      `json:"row_count"`
	Columns  []string `json:"columns"`
	Issues   []string `json:"issues"`
}

// Validate inspects parsed rows for quality problems: cells without a value
// and rows that fully duplicate an earlier one. Row indices in the issue
// messages are zero-based over the data rows, header excluded.
func Validate(header []string, rows []map[string]string) ValidationSummary {
	summary := ValidationSummary{
		RowCount: len(rows),
		Columns:  header,
		Issues:   []string{},
	}

	var emptyRows []int
	for i, row := range rows {
		for _, col := range header {
			if row[col] == "" {
				emptyRows = append(emptyRows, i)
				break
			}
		}
	}
	if len(emptyRows) > 0 {
		summary.Issues = append(summary.Issues,
			fmt.Sprintf("Filas con valores vacíos: %v", emptyRows))
	}

	seen := make(map[string]bool, len(rows))
	var duplicateRows []int
	for i, row := range rows {
		key := rowKey(header, row)
		if seen[key] {
			duplicateRows = append(duplicateRows, i)
			continue
		}
		seen[key] = true
	}
	if len(duplicateRows) > 0 {
		summary.Issues = append(summary.Issues,
			fmt.Sprintf("Filas duplicadas: %v", duplicateRows))
	}

	return summary
}

// rowKey serializes a row in header order so full-row duplicates compare
// equal regardless of map iteration order.
func rowKey(header []string, row map[string]string) string {
	var b strings.Builder
	for _, col := range header {
		b.WriteString(row[col])
		b.WriteByte(0x1F)
	}
	return b.String()
}
