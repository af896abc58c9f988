package extract

import "strings"

// Analysis is the full result of analyzing one document's text.
type Analysis struct {
	DocType       DocType `json:"doc_type"`
	RawTextLength int     `json:"raw_text_length"`

	// Invoice documents
	Fields Fields `json:"fields"`
	Items  []Item `json:"items,omitempty"`

	// Information documents
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Sentiment   string `json:"sentiment,omitempty"`
}

// Analyze classifies the text and runs the matching analysis: field and item
// extraction for invoices, description/summary/sentiment for everything else.
// Like every function in this package it is total over its input.
func Analyze(text string) Analysis {
	return AnalyzeAs(text, Classify(text))
}

// AnalyzeAs runs the analysis for an already-classified document, skipping
// classification. Callers with an upstream classifier use this to decide
// whether the field extractor runs at all.
func AnalyzeAs(text string, docType DocType) Analysis {
	analysis := Analysis{
		DocType:       docType,
		RawTextLength: len(text),
	}

	if analysis.DocType == DocTypeInvoice {
		analysis.Fields = Extract(text)
		analysis.Items = ParseItems(text)
		return analysis
	}

	analysis.Description = description(text, 200)
	analysis.Summary = Summarize(text, 3)
	analysis.Sentiment = Sentiment(text)
	return analysis
}

var (
	positiveWords = []string{"bueno", "excelente", "positivo", "satisfactorio", "feliz"}
	negativeWords = []string{"malo", "negativo", "problema", "queja", "insatisfecho"}
)

// Sentiment counts positive and negative vocabulary hits and reports the
// dominant side, or "neutral" on a tie.
func Sentiment(text string) string {
	lower := strings.ToLower(text)

	pos, neg := 0, 0
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}

	switch {
	case pos > neg:
		return "positivo"
	case neg > pos:
		return "negativo"
	default:
		return "neutral"
	}
}

// Summarize keeps the first maxSentences sentences, splitting naively on ".".
func Summarize(text string, maxSentences int) string {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == maxSentences {
			break
		}
	}
	return strings.Join(sentences, ". ")
}

// description returns the first maxRunes runes with newlines flattened.
func description(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) > maxRunes {
		runes = runes[:maxRunes]
	}
	return strings.ReplaceAll(string(runes), "\n", " ")
}
