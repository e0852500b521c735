// Package cart holds the in-memory order being built on one POS session.
// Line uniqueness by item id is enforced here, not left to callers.
package cart

import (
	"fmt"
	"sort"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/money"
)

// Line ties one catalog item to a requested quantity. Stock and UnitPrice
// are snapshots taken when the line was added.
type Line struct {
	ItemID    int64       `json:"item_id"`
	Name      string      `json:"name"`
	Stock     int         `json:"stock"`
	UnitPrice money.Price `json:"unit_price"`
	Quantity  int         `json:"quantity"`
}

// LineTotal returns unit price times quantity, per currency, unrounded.
func (l Line) LineTotal() money.Price {
	return l.UnitPrice.MulInt(l.Quantity)
}

func (l Line) validate() error {
	if l.ItemID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "line item id is required")
	}
	if l.Quantity > l.Stock {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("quantity %d exceeds available stock %d for item %d", l.Quantity, l.Stock, l.ItemID))
	}
	return nil
}

// Cart is an ordered collection of lines, unique by item id. It is not
// safe for concurrent use; the session store serializes access.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// SetLines replaces the cart wholesale. Lines with quantity <= 0 are
// dropped; a later line for the same item id replaces the earlier one in
// place, keeping its original position.
func (c *Cart) SetLines(lines []Line) error {
	replacement := make([]Line, 0, len(lines))
	index := map[int64]int{}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return err
		}
		if at, ok := index[line.ItemID]; ok {
			replacement[at] = line
			continue
		}
		index[line.ItemID] = len(replacement)
		replacement = append(replacement, line)
	}

	kept := replacement[:0]
	for _, line := range replacement {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	c.lines = append([]Line(nil), kept...)
	return nil
}

// UpsertLine adds or replaces the line for its item id. Quantity <= 0
// removes the line instead, so the cart never holds zero-quantity lines.
func (c *Cart) UpsertLine(line Line) error {
	if err := line.validate(); err != nil {
		return err
	}
	if line.Quantity <= 0 {
		c.RemoveLine(line.ItemID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ItemID == line.ItemID {
			c.lines[i] = line
			return nil
		}
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine deletes the line for the item id; no-op when absent.
func (c *Cart) RemoveLine(itemID int64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SortByPrice reorders lines ascending by unit price in the currency.
func (c *Cart) SortByPrice(currency money.Currency) {
	sort.SliceStable(c.lines, func(i, j int) bool {
		return c.lines[i].UnitPrice.Amount(currency).LessThan(c.lines[j].UnitPrice.Amount(currency))
	})
}

// Lines returns a copy of the lines; mutating it does not touch the cart.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// Clone returns an independent deep copy of the cart.
func (c *Cart) Clone() *Cart {
	return &Cart{lines: append([]Line(nil), c.lines...)}
}
