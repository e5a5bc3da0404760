package checkout

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuyerContact carries the buyer-supplied contact fields. They are stored
// exactly as provided; no format validation happens at this layer.
type BuyerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderDraft is an immutable snapshot of a cart taken at checkout time.
// Total is computed once at build time and never recomputed, even if the
// originating cart changes afterwards.
type OrderDraft struct {
	Reference string       `json:"reference"`
	Lines     []CartLine   `json:"lines"`
	Total     int64        `json:"totalCents"`
	Buyer     BuyerContact `json:"buyer"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BuildDraft snapshots the cart into a checkout-ready draft with a fresh
// reference. Building from an empty cart fails with ErrEmptyCart.
func BuildDraft(cart *Cart, buyer BuyerContact) (*OrderDraft, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	return &OrderDraft{
		Reference: NewReference(),
		Lines:     cart.Lines(),
		Total:     cart.Total(),
		Buyer:     buyer,
		CreatedAt: time.Now(),
	}, nil
}

// NewReference generates a human-presentable order reference. The ORD-
// prefix is a compatibility contract with receipts and support lookups;
// the token combines a nanosecond timestamp with a random UUID fragment so
// that drafts built in rapid succession never collide.
func NewReference() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	frag := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "ORD-" + strings.ToUpper(ts+frag)
}
