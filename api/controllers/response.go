package controllers

import (
	"github.com/galleypos/galleypos-backend/internal/cart"
	"github.com/galleypos/galleypos-backend/internal/session"
	"github.com/galleypos/galleypos-backend/pkg/db/models"
	"github.com/galleypos/galleypos-backend/pkg/money"
)

type priceView struct {
	EUR string `json:"eur"`
	USD string `json:"usd"`
	GBP string `json:"gbp"`
}

func newPriceView(p money.Price) priceView {
	return priceView{
		EUR: p.EUR.StringFixed(2),
		USD: p.USD.StringFixed(2),
		GBP: p.GBP.StringFixed(2),
	}
}

type productView struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Stock int       `json:"stock"`
	Price priceView `json:"price"`
}

func newProductViews(products []models.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{
			ID:    p.ID,
			Name:  p.Name,
			Stock: p.Stock,
			Price: newPriceView(p.Price()),
		})
	}
	return out
}

type lineView struct {
	ItemID    int64     `json:"item_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Quantity  int       `json:"quantity"`
	UnitPrice priceView `json:"unit_price"`
	LineTotal priceView `json:"line_total"`
}

func newLineViews(lines []cart.Line) []lineView {
	out := make([]lineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineView{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Stock:     l.Stock,
			Quantity:  l.Quantity,
			UnitPrice: newPriceView(l.UnitPrice),
			LineTotal: newPriceView(l.LineTotal().Round2()),
		})
	}
	return out
}

type sessionView struct {
	ID             string     `json:"id"`
	Currency       string     `json:"currency"`
	CurrencySymbol string     `json:"currency_symbol"`
	SaleType       string     `json:"sale_type"`
	Ratio          string     `json:"ratio"`
	Seat           string     `json:"seat"`
	Lines          []lineView `json:"lines"`
	FinalPrice     priceView  `json:"final_price"`
	AdjustedPrice  priceView  `json:"adjusted_price"`
	AmountDue      string     `json:"amount_due"`
	Status         string     `json:"status"`
	Frozen         bool       `json:"frozen"`
}

func newSessionView(snap *session.Snapshot) sessionView {
	return sessionView{
		ID:             snap.ID.String(),
		Currency:       string(snap.Currency),
		CurrencySymbol: snap.Currency.Symbol(),
		SaleType:       snap.SaleType,
		Ratio:          snap.Ratio.String(),
		Seat:           snap.Seat.String(),
		Lines:          newLineViews(snap.Lines),
		FinalPrice:     newPriceView(snap.FinalPrice),
		AdjustedPrice:  newPriceView(snap.AdjustedPrice),
		AmountDue:      snap.AmountDue.StringFixed(2),
		Status:         string(snap.Status),
		Frozen:         snap.Frozen,
	}
}

type tenderView struct {
	Completed   bool        `json:"completed"`
	Frozen      bool        `json:"frozen"`
	Remaining   string      `json:"remaining"`
	StockErrors []string    `json:"stock_errors,omitempty"`
	Session     sessionView `json:"session"`
}

func newTenderView(result *session.TenderResult) tenderView {
	return tenderView{
		Completed:   result.Completed,
		Frozen:      result.Frozen,
		Remaining:   result.Remaining.StringFixed(2),
		StockErrors: result.StockErrors,
		Session:     newSessionView(result.Session),
	}
}
