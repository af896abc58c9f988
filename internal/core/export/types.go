package export

// ExportData is a generic tabular payload to be written by an exporter.
type ExportData struct {
	SheetName string
	Headers   []string
	Rows      [][]interface{}
}
