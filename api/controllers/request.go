package controllers

import (
	"github.com/galleypos/galleypos-backend/internal/session"
)

type lineBody struct {
	ItemID   int64 `json:"item_id" validate:"required,min=1"`
	Quantity int   `json:"quantity" validate:"min=0"`
}

type replaceCartRequest struct {
	Lines []lineBody `json:"lines" validate:"dive"`
}

type upsertLineRequest struct {
	ItemID   int64 `json:"item_id" validate:"required,min=1"`
	Quantity int   `json:"quantity" validate:"min=0"`
}

type cycleCurrencyRequest struct {
	Slot string `json:"slot" validate:"required,oneof=first second"`
}

type saleTypeRequest struct {
	SaleType string `json:"sale_type" validate:"required"`
}

type seatRequest struct {
	Letter string `json:"letter" validate:"required,len=1"`
	Number int    `json:"number" validate:"required,min=1"`
}

// Amount stays a string end to end: the keypad sends "4,80" and the
// domain owns the locale-aware parse.
type tenderRequest struct {
	Amount string `json:"amount" validate:"required"`
	Method string `json:"method" validate:"required,oneof=cash card"`
}

func toLineInputs(lines []lineBody) []session.LineInput {
	out := make([]session.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, session.LineInput{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return out
}
