package workspace

import (
	"math"

	"github.com/andrissp/invoicedesk/internal/client/models"
)

// Totals is a computed document summary, each figure rounded to two decimal
// places for display.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// LineTotal is quantity times price, independent per line.
func LineTotal(item models.Item) float64 {
	return item.Quantity * item.Price
}

// DocumentTotals sums the line totals, applies the tax rate (a percentage,
// e.g. 20 for 20%) and produces the grand total.
func DocumentTotals(items []models.Item, taxRatePercent float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += LineTotal(it)
	}
	tax := subtotal * taxRatePercent / 100
	return Totals{
		Subtotal: round2(subtotal),
		Tax:      round2(tax),
		Total:    round2(subtotal + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
