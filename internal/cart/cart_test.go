package cart

import (
	"testing"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/shopspring/decimal"
)

func line(id int64, eur string, qty int) Line {
	price, err := decimal.NewFromString(eur)
	if err != nil {
		panic(err)
	}
	return Line{
		ItemID:    id,
		Name:      "item",
		Stock:     10,
		UnitPrice: money.NewPrice(price, price, price),
		Quantity:  qty,
	}
}

func TestUpsertLineReplacesExistingItem(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.UpsertLine(line(1, "2.50", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpsertLine(line(2, "1.00", 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpsertLine(line(1, "2.50", 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ItemID != 1 || lines[0].Quantity != 5 {
		t.Fatalf("expected item 1 replaced in place, got %+v", lines[0])
	}
}

func TestUpsertLineZeroQuantityRemoves(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.UpsertLine(line(1, "2.50", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpsertLine(line(1, "2.50", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() {
		t.Fatal("expected cart to be empty after zero-quantity upsert")
	}
}

func TestUpsertLineRejectsQuantityOverStock(t *testing.T) {
	t.Parallel()

	c := New()
	over := line(1, "2.50", 11)
	err := c.UpsertLine(over)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !c.IsEmpty() {
		t.Fatal("rejected upsert must not mutate the cart")
	}
}

func TestSetLinesDropsZeroAndDeduplicates(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.SetLines([]Line{
		line(1, "2.50", 2),
		line(2, "1.00", 0),
		line(1, "2.50", 4),
		line(3, "3.00", 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0].ItemID != 1 || lines[0].Quantity != 4 {
		t.Fatalf("expected last write for item 1 to win, got %+v", lines[0])
	}
	if lines[1].ItemID != 3 {
		t.Fatalf("expected item 3 second, got %+v", lines[1])
	}
}

func TestRemoveLineNoopWhenAbsent(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.UpsertLine(line(1, "2.50", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.RemoveLine(42)
	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	c.RemoveLine(1)
	if !c.IsEmpty() {
		t.Fatal("expected empty cart")
	}
}

func TestSortByPriceUsesActiveCurrency(t *testing.T) {
	t.Parallel()

	cheapUSD := Line{
		ItemID:    1,
		Stock:     5,
		UnitPrice: money.NewPrice(decimal.NewFromFloat(3.00), decimal.NewFromFloat(1.00), decimal.NewFromFloat(3.00)),
		Quantity:  1,
	}
	cheapEUR := Line{
		ItemID:    2,
		Stock:     5,
		UnitPrice: money.NewPrice(decimal.NewFromFloat(1.00), decimal.NewFromFloat(3.00), decimal.NewFromFloat(1.00)),
		Quantity:  1,
	}

	c := New()
	if err := c.SetLines([]Line{cheapUSD, cheapEUR}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.SortByPrice(money.EUR)
	if got := c.Lines(); got[0].ItemID != 2 {
		t.Fatalf("expected item 2 first under EUR, got %+v", got)
	}

	c.SortByPrice(money.USD)
	if got := c.Lines(); got[0].ItemID != 1 {
		t.Fatalf("expected item 1 first under USD, got %+v", got)
	}
}

func TestLinesReturnsDetachedCopy(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.UpsertLine(line(1, "2.50", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Lines()
	lines[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 2 {
		t.Fatalf("cart was mutated through returned slice: quantity=%d", got)
	}
}
