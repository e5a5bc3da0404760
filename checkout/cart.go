package checkout

// CatalogItem is a purchasable item as supplied by the catalog provider.
// Prices are in minor currency units (cents) so that repeated cart
// arithmetic never drifts. StockLevel is advisory only and is never
// enforced against the cart.
type CatalogItem struct {
	ID         string `json:"itemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"priceCents"`
	StockLevel int    `json:"stockLevel"`
}

// CartLine pairs one catalog item with a quantity. A line with quantity
// below 1 never exists; removal is the representation of "not in cart".
type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}

// LineTotal returns the line's contribution to the cart total, in cents.
func (l CartLine) LineTotal() int64 {
	return l.Item.UnitPrice * int64(l.Quantity)
}

// Cart is an insertion-ordered collection of lines, unique by item id.
// It holds no locks of its own: a cart belongs to exactly one session and
// its owner must serialize mutations (see carts.Store).
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line for the item, or
// appends a new quantity-1 line at the end of the sequence. Items with a
// negative unit price are rejected with ErrInvalidItem.
func (c *Cart) AddItem(item CatalogItem) error {
	if item.ID == "" || item.UnitPrice < 0 {
		return ErrInvalidItem
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
	return nil
}

// ChangeQuantity applies delta to the line for itemID. If the resulting
// quantity drops below 1 the line is removed entirely; this is the only
// removal path. A change against an absent item returns ErrLineNotFound.
func (c *Cart) ChangeQuantity(itemID string, delta int) error {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if c.lines[i].Quantity+delta < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		c.lines[i].Quantity += delta
		return nil
	}
	return ErrLineNotFound
}

// Total recomputes the cart total from scratch on every call, in cents.
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart. Used after a completed or abandoned checkout.
func (c *Cart) Clear() {
	c.lines = nil
}
