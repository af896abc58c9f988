package extract

import "strings"

// DocType is the coarse document classification.
type DocType string

const (
	// DocTypeInvoice covers invoices and proformas: documents worth running
	// the field extractor on.
	DocTypeInvoice DocType = "factura"

	// DocTypeInfo is everything else; such documents are presented as raw
	// description/summary instead of structured fields.
	DocTypeInfo DocType = "informacion"
)

// Keyword vocabulary shared by the supported invoice styles (Spanish-language
// fiscal documents, Argentine and Mexican variants included).
var invoiceKeywords = []string{
	"factura",
	"factura proforma",
	"invoice",
	"subtotal",
	"iva",
	"rfc",
	"cuit",
	"total a pagar",
	"número de factura",
	"numero de factura",
	"no. factura",
}

// Classify scores the text against the invoice keyword vocabulary. Two or
// more hits classify the document as an invoice.
func Classify(text string) DocType {
	lower := strings.ToLower(text)

	score := 0
	for _, kw := range invoiceKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}

	if score >= 2 {
		return DocTypeInvoice
	}
	return DocTypeInfo
}
