// Package money holds the closed three-currency price model used across
// the point of sale: every amount is quoted in EUR, USD and GBP at once.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is one of the fixed set of onboard currencies.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// Currencies returns the closed currency set in display order, EUR first.
func Currencies() []Currency {
	return []Currency{EUR, USD, GBP}
}

// ParseCurrency validates a currency code.
func ParseCurrency(value string) (Currency, error) {
	switch Currency(value) {
	case EUR, USD, GBP:
		return Currency(value), nil
	}
	return "", fmt.Errorf("unknown currency %q", value)
}

// Next returns the alternate currency the first cycle button switches to.
func (c Currency) Next() Currency {
	switch c {
	case EUR:
		return USD
	case USD:
		return GBP
	default:
		return EUR
	}
}

// Prev returns the alternate currency the second cycle button switches to.
func (c Currency) Prev() Currency {
	switch c {
	case EUR:
		return GBP
	case USD:
		return EUR
	default:
		return USD
	}
}

// Symbol returns the display glyph for receipts.
func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case GBP:
		return "£"
	default:
		return "€"
	}
}

// Price carries one amount per currency. The three totals are computed
// independently, so they need not be consistent with a single exchange rate.
type Price struct {
	EUR decimal.Decimal `json:"EUR"`
	USD decimal.Decimal `json:"USD"`
	GBP decimal.Decimal `json:"GBP"`
}

// Zero returns an all-zero price.
func Zero() Price {
	return Price{}
}

// NewPrice builds a price from its three per-currency amounts.
func NewPrice(eur, usd, gbp decimal.Decimal) Price {
	return Price{EUR: eur, USD: usd, GBP: gbp}
}

// Amount returns the total in the requested currency.
func (p Price) Amount(c Currency) decimal.Decimal {
	switch c {
	case USD:
		return p.USD
	case GBP:
		return p.GBP
	default:
		return p.EUR
	}
}

// Add sums two prices per currency, without rounding.
func (p Price) Add(other Price) Price {
	return Price{
		EUR: p.EUR.Add(other.EUR),
		USD: p.USD.Add(other.USD),
		GBP: p.GBP.Add(other.GBP),
	}
}

// MulInt scales every currency amount by an integer quantity.
func (p Price) MulInt(qty int) Price {
	factor := decimal.NewFromInt(int64(qty))
	return Price{
		EUR: p.EUR.Mul(factor),
		USD: p.USD.Mul(factor),
		GBP: p.GBP.Mul(factor),
	}
}

// Scale multiplies every currency amount by the ratio and rounds each to
// 2 decimal places independently.
func (p Price) Scale(ratio decimal.Decimal) Price {
	return Price{
		EUR: Round2(p.EUR.Mul(ratio)),
		USD: Round2(p.USD.Mul(ratio)),
		GBP: Round2(p.GBP.Mul(ratio)),
	}
}

// Round2 rounds every currency amount to 2 decimal places.
func (p Price) Round2() Price {
	return Price{
		EUR: Round2(p.EUR),
		USD: Round2(p.USD),
		GBP: Round2(p.GBP),
	}
}

// IsZero reports whether all three amounts are zero.
func (p Price) IsZero() bool {
	return p.EUR.IsZero() && p.USD.IsZero() && p.GBP.IsZero()
}

// IsNegative reports whether any currency amount is below zero.
func (p Price) IsNegative() bool {
	return p.EUR.IsNegative() || p.USD.IsNegative() || p.GBP.IsNegative()
}

// Equal compares two prices per currency.
func (p Price) Equal(other Price) bool {
	return p.EUR.Equal(other.EUR) && p.USD.Equal(other.USD) && p.GBP.Equal(other.GBP)
}

// Round2 rounds a single amount to 2 decimal places, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
