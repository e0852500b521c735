package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SaleType is a pricing tier: a label and the ratio applied to the cart
// total to get the amount actually charged.
type SaleType struct {
	Label string          `json:"label"`
	Ratio decimal.Decimal `json:"ratio"`
}

const DefaultSaleType = "Retail"

var saleTypes = []SaleType{
	{Label: "Business", Ratio: decimal.NewFromFloat(1.2)},
	{Label: "Retail", Ratio: decimal.NewFromInt(1)},
	{Label: "Crew", Ratio: decimal.NewFromFloat(0.6)},
	{Label: "Happy Hour", Ratio: decimal.NewFromFloat(0.5)},
	{Label: "Invitation Business", Ratio: decimal.NewFromFloat(0.3)},
	{Label: "Invitation Tourist", Ratio: decimal.NewFromFloat(0.4)},
}

// SaleTypes returns the fixed tier set in display order.
func SaleTypes() []SaleType {
	return append([]SaleType(nil), saleTypes...)
}

// RatioFor returns the ratio for a label, defaulting to 1.0 for labels
// not in the fixed set. Multi-word tiers are accepted with either a
// space or a hyphen ("Invitation Business" and "Invitation-Business").
func RatioFor(label string) decimal.Decimal {
	normalized := strings.ReplaceAll(label, "-", " ")
	for _, st := range saleTypes {
		if st.Label == normalized {
			return st.Ratio
		}
	}
	return decimal.NewFromInt(1)
}
