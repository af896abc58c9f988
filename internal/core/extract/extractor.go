package extract

import (
	"regexp"
	"strings"
)

// Fields holds the invoice fields recovered from OCR text. Every field is
// optional: an empty string means the finder could not recover a value.
// A present field is always non-empty and trimmed.
type Fields struct {
	Client   string `json:"cliente,omitempty"`
	Provider string `json:"proveedor,omitempty"`
	Number   string `json:"numero_factura,omitempty"`
	Date     string `json:"fecha,omitempty"`
	Total    string `json:"total,omitempty"`
}

// IsEmpty reports whether no field was recovered at all.
func (f Fields) IsEmpty() bool {
	return f == Fields{}
}

// Extract runs every field finder over the normalized lines of the given
// text. It is total over its input: garbled or non-invoice text degrades to
// fewer (possibly zero) recovered fields, never an error.
func Extract(text string) Fields {
	lines := NormalizeLines(text)

	return Fields{
		Client:   findClient(lines),
		Provider: findProvider(lines),
		Number:   findNumber(lines),
		Date:     findDate(lines),
		Total:    findTotal(lines),
	}
}

// Merge overlays heuristic results with authoritative upstream values.
// A non-empty upstream field always wins; heuristic values only fill gaps.
func Merge(upstream, heuristic Fields) Fields {
	pick := func(up, heur string) string {
		if strings.TrimSpace(up) != "" {
			return strings.TrimSpace(up)
		}
		return heur
	}

	return Fields{
		Client:   pick(upstream.Client, heuristic.Client),
		Provider: pick(upstream.Provider, heuristic.Provider),
		Number:   pick(upstream.Number, heuristic.Number),
		Date:     pick(upstream.Date, heuristic.Date),
		Total:    pick(upstream.Total, heuristic.Total),
	}
}

// ---------------------------------------------------------
// Label-anchored finders (client, provider)
// ---------------------------------------------------------

var clientLabels = []string{"cliente", "client"}

var razonSocialLabels = []string{"razón social", "razon social"}

// Proforma-style headers print the issuer name two lines below the label
// instead of adjacent to it.
var emisorLabels = []string{"emisor"}

// findClient locates the client name after a "Cliente"-style label, either
// inline ("Cliente: Acme Corp") or on the following line.
func findClient(lines []string) string {
	for i, line := range lines {
		if !hasAnyPrefix(strings.ToLower(line), clientLabels) {
			continue
		}
		return valueAt(lines, i, 1)
	}
	return ""
}

// findProvider locates the issuer name. Both label families are tried in the
// same top-to-bottom scan and the first satisfying line wins; on a line where
// both could match, the "razón social" family takes priority. The "emisor"
// family reads its value two lines below the label line.
func findProvider(lines []string) string {
	for i, line := range lines {
		lower := strings.ToLower(line)

		if hasAnyPrefix(lower, razonSocialLabels) {
			return valueAt(lines, i, 1)
		}
		if hasAnyPrefix(lower, emisorLabels) {
			return valueAt(lines, i, 2)
		}
	}
	return ""
}

// valueAt resolves the value for the label line at index i: the text after an
// inline colon when non-blank, otherwise the line `offset` positions below.
func valueAt(lines []string, i, offset int) string {
	if _, after, ok := strings.Cut(lines[i], ":"); ok {
		if v := strings.TrimSpace(after); v != "" {
			return v
		}
	}
	if i+offset < len(lines) {
		return strings.TrimSpace(lines[i+offset])
	}
	return ""
}

func hasAnyPrefix(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------
// Pattern-anchored finders (number, date, total)
// ---------------------------------------------------------

// Document number patterns, in priority order: "comprobante" labels beat the
// "n° factura" family even when the factura line appears earlier on the page.
var comprobantePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)comprobante\s*(?:n[°ºo]\.?)?\s*[:#\-]?\s*([A-Za-z0-9][A-Za-z0-9./\-]*)`),
}

var facturaNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)n[úu]mero\s+de\s+factura\s*[:#\-]?\s*([A-Za-z0-9][A-Za-z0-9./\-]*)`),
	regexp.MustCompile(`(?i)(?:n[°ºo]\.?\s*factura|nro\.?\s*factura|no\.\s*factura|factura\s+n[°ºo]?)\s*[:#\-]?\s*([A-Za-z0-9][A-Za-z0-9./\-]*)`),
}

// findNumber tries each pattern group over the whole document before falling
// back to the next, so a comprobante match anywhere wins over a factura-number
// match anywhere.
func findNumber(lines []string) string {
	for _, group := range [][]*regexp.Regexp{comprobantePatterns, facturaNumberPatterns} {
		for _, line := range lines {
			for _, re := range group {
				if m := re.FindStringSubmatch(line); m != nil {
					return strings.TrimSpace(m[1])
				}
			}
		}
	}
	return ""
}

var (
	emissionLabel = regexp.MustCompile(`(?i)fecha\s+(?:de\s+)?emisi[oó]n`)
	dateToken     = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`)
)

// findDate prefers a date sitting on an emission-date line over any date that
// merely appears somewhere on the page.
func findDate(lines []string) string {
	for _, line := range lines {
		if !emissionLabel.MatchString(line) {
			continue
		}
		if tok := dateToken.FindString(line); tok != "" {
			return tok
		}
	}

	// Fallback: first date token anywhere.
	for _, line := range lines {
		if tok := dateToken.FindString(line); tok != "" {
			return tok
		}
	}
	return ""
}

// amountToken matches decimal amounts like "1.308,80", "600,00" or "1.451":
// groups of 1-3 digits with "." or "," as thousands separator and an optional
// 2-digit fraction using either separator.
var amountToken = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`)

// findTotal runs the total strategies in authority order. "Importe total"
// lines are the least ambiguous across both supported document styles, so
// they are trusted first; generic "Total" lines are noisier (subtotals,
// amount-in-words lines) and only consulted when strategy one found nothing.
// Within each strategy the last matching line wins.
func findTotal(lines []string) string {
	var total string

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "importe total") {
			continue
		}
		if tok := amountToken.FindString(line); tok != "" {
			total = tok
		}
	}
	if total != "" {
		return total
	}

	for i, line := range lines {
		lower := strings.ToLower(line)
		if !strings.HasPrefix(lower, "total") {
			continue
		}
		if strings.Contains(lower, "con letras") || strings.Contains(lower, "subtotal") {
			continue
		}

		tok := amountToken.FindString(line)
		if tok == "" && i+1 < len(lines) {
			tok = amountToken.FindString(lines[i+1])
		}
		if tok != "" {
			total = tok
		}
	}
	return total
}
