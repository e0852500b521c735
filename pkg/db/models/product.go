package models

import (
	"time"

	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Product is one sellable catalog item on the trolley. Stock only ever
// moves down, via the post-sale decrement, and is floored at zero.
type Product struct {
	ID        int64           `gorm:"column:id;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Stock     int             `gorm:"column:stock;not null;default:0"`
	PriceEUR  decimal.Decimal `gorm:"column:price_eur;type:numeric(10,2);not null"`
	PriceUSD  decimal.Decimal `gorm:"column:price_usd;type:numeric(10,2);not null"`
	PriceGBP  decimal.Decimal `gorm:"column:price_gbp;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// Price assembles the per-currency unit price value object.
func (p Product) Price() money.Price {
	return money.NewPrice(p.PriceEUR, p.PriceUSD, p.PriceGBP)
}

// SetPrice stores the per-currency amounts back onto the row.
func (p *Product) SetPrice(price money.Price) {
	p.PriceEUR = price.EUR
	p.PriceUSD = price.USD
	p.PriceGBP = price.GBP
}
