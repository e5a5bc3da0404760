package checkout

import (
	"errors"
	"testing"
)

func item(id string, cents int64) CatalogItem {
	return CatalogItem{ID: id, Name: "item " + id, UnitPrice: cents, StockLevel: 10}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	c := NewCart()
	if err := c.AddItem(item("A", 1599)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := c.AddItem(item("A", 1599)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := c.AddItem(item("B", 2599)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// insertion order preserved
	if lines[0].Item.ID != "A" || lines[1].Item.ID != "B" {
		t.Fatalf("unexpected line order: %v", lines)
	}
	if lines[0].Quantity != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %d, %d", lines[0].Quantity, lines[1].Quantity)
	}
	if got := c.Total(); got != 2*1599+2599 {
		t.Fatalf("Total = %d, want %d", got, 2*1599+2599)
	}
}

func TestAddItemRejectsNegativePrice(t *testing.T) {
	c := NewCart()
	if err := c.AddItem(item("A", -1)); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("invalid item must not enter the cart")
	}
}

func TestChangeQuantityRemovesAtFloor(t *testing.T) {
	c := NewCart()
	_ = c.AddItem(item("A", 100))
	_ = c.AddItem(item("A", 100))

	if err := c.ChangeQuantity("A", -2); err != nil {
		t.Fatalf("ChangeQuantity: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("dropping to zero must remove the line, got %d lines", c.Len())
	}
	// the line is gone, a further change must surface the programming error
	if err := c.ChangeQuantity("A", 1); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestChangeQuantityAbsentItem(t *testing.T) {
	c := NewCart()
	if err := c.ChangeQuantity("nope", 1); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestQuantityNeverBelowOne(t *testing.T) {
	c := NewCart()
	_ = c.AddItem(item("A", 250))
	_ = c.AddItem(item("B", 999))
	_ = c.ChangeQuantity("A", 4)
	_ = c.ChangeQuantity("A", -10)
	_ = c.ChangeQuantity("B", -1)

	for _, l := range c.Lines() {
		if l.Quantity < 1 {
			t.Fatalf("line %s has quantity %d", l.Item.ID, l.Quantity)
		}
	}
}

func TestTotalRecomputedAndIdempotent(t *testing.T) {
	c := NewCart()
	_ = c.AddItem(item("A", 1599))
	_ = c.ChangeQuantity("A", 2)
	_ = c.AddItem(item("B", 2599))

	want := int64(3*1599 + 2599)
	if got := c.Total(); got != want {
		t.Fatalf("Total = %d, want %d", got, want)
	}
	if first, second := c.Total(), c.Total(); first != second {
		t.Fatalf("Total drifted without mutation: %d then %d", first, second)
	}

	// cross-check against a from-scratch recomputation
	var sum int64
	for _, l := range c.Lines() {
		sum += l.Item.UnitPrice * int64(l.Quantity)
	}
	if got := c.Total(); got != sum {
		t.Fatalf("Total = %d, recomputed = %d", got, sum)
	}
}

func TestClear(t *testing.T) {
	c := NewCart()
	_ = c.AddItem(item("A", 100))
	c.Clear()
	if c.Len() != 0 || c.Total() != 0 {
		t.Fatalf("Clear left state behind: len=%d total=%d", c.Len(), c.Total())
	}
}
