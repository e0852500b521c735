// Package pricing computes cart totals and applies sale-type ratios.
package pricing

import (
	"github.com/galleypos/galleypos-backend/internal/cart"
	"github.com/galleypos/galleypos-backend/pkg/money"
)

// FinalPrice sums unit price times quantity across lines, per currency,
// each total rounded to 2 decimal places independently. An empty cart
// yields an all-zero price.
func FinalPrice(lines []cart.Line) money.Price {
	total := money.Zero()
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total.Round2()
}

// AdjustedPrice scales the final price by the sale-type ratio and
// re-rounds each currency to 2 decimal places.
func AdjustedPrice(final money.Price, saleType string) money.Price {
	return final.Scale(RatioFor(saleType))
}
