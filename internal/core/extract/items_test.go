package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemsProductLines(t *testing.T) {
	text := "Producto 1 2 100 200,00\nProducto 2 ~ 3 50 150,00"

	items := ParseItems(text)

	require.Len(t, items, 2)
	assert.Equal(t, Item{Code: "Producto", Description: "1", Quantity: 2, UnitPrice: 100, Total: 200}, items[0])
	assert.Equal(t, 3, items[1].Quantity)
	assert.Equal(t, 150.0, items[1].Total)
}

func TestParseItemsGenericLine(t *testing.T) {
	items := ParseItems("A102 Tornillos galvanizados 4 12,50 50,00")

	require.Len(t, items, 1)
	assert.Equal(t, "A102", items[0].Code)
	assert.Equal(t, "Tornillos galvanizados", items[0].Description)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 12.50, items[0].UnitPrice)
	assert.Equal(t, 50.0, items[0].Total)
}

func TestParseItemsInfersMissingQuantity(t *testing.T) {
	// OCR dropped the quantity column; 600/150 gives a clean 4.
	items := ParseItems("Producto 2 ~ 150 600,00")

	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 150.0, items[0].UnitPrice)
}

func TestParseItemsSkipsUnparseableLines(t *testing.T) {
	items := ParseItems("Gracias por su compra\nSubtotal 500,00\n\n")

	assert.Empty(t, items)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.308,80", 1308.80},
		{"600,00", 600},
		{"1451", 1451},
		{"€ 99,90", 99.90},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAmount(tt.in))
		})
	}
}
