package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Item represents one invoice table line.
type Item struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Total       float64 `json:"total"`
}

// Item line patterns, in priority order:
//  1. "Producto 1 2 100 200,00" with OCR noise (~, -) between description
//     and quantity
//  2. generic "CODE description qty price total"
//  3. "Producto 2 ~ 150 600,00" where OCR lost the quantity; the quantity is
//     inferred from total/price when that yields a clean integer
var (
	productLine = regexp.MustCompile(`(?i)^(Producto)\s*(\d+)\s*[^\d]*(\d+)\s+(\d+(?:[.,]\d*)?)\s+(\d+(?:[.,]\d*)?)$`)
	genericLine = regexp.MustCompile(`^(\w+)\s+([\w\s~.\-]+?)\s+(\d+)\s+(\d+(?:[.,]\d{1,2})?)\s+(\d+(?:[.,]\d{1,2})?)$`)
	noQtyLine   = regexp.MustCompile(`(?i)^(Producto)\s*(\d+)\s*[^\d]+(\d+(?:[.,]\d*)?)\s+(\d+(?:[.,]\d*)?)$`)
)

// ParseItems recovers invoice table lines from OCR text. Lines that match no
// pattern are skipped silently.
func ParseItems(text string) []Item {
	var items []Item

	for _, line := range NormalizeLines(text) {
		if m := productLine.FindStringSubmatch(line); m != nil {
			qty, _ := strconv.Atoi(m[3])
			items = append(items, Item{
				Code:        m[1],
				Description: m[2],
				Quantity:    qty,
				UnitPrice:   parseAmount(m[4]),
				Total:       parseAmount(m[5]),
			})
			continue
		}

		if m := genericLine.FindStringSubmatch(line); m != nil {
			qty, _ := strconv.Atoi(m[3])
			items = append(items, Item{
				Code:        m[1],
				Description: strings.Trim(m[2], " -~"),
				Quantity:    qty,
				UnitPrice:   parseAmount(m[4]),
				Total:       parseAmount(m[5]),
			})
			continue
		}

		if m := noQtyLine.FindStringSubmatch(line); m != nil {
			price := parseAmount(m[3])
			total := parseAmount(m[4])
			qty, ok := inferQuantity(price, total)
			if !ok {
				continue
			}
			items = append(items, Item{
				Code:        m[1],
				Description: m[2],
				Quantity:    qty,
				UnitPrice:   price,
				Total:       total,
			})
		}
	}
	return items
}

// parseAmount converts "1.308,80" -> 1308.80, "600,00" -> 600.00 and
// "1451" -> 1451.0. Unparseable input yields 0.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// inferQuantity derives the quantity from total/price when OCR dropped it.
// A small tolerance absorbs rounding noise in the recognized amounts.
func inferQuantity(price, total float64) (int, bool) {
	if price <= 0 {
		return 0, false
	}
	qty := total / price
	rounded := int(qty + 0.5)
	if qty-float64(rounded) < 0.05 && float64(rounded)-qty < 0.05 && rounded >= 1 && rounded <= 10000 {
		return rounded, true
	}
	return 0, false
}
