package catalog

import (
	"context"
	"errors"

	"medibay/checkout"
)

// ErrNotFound is returned when no catalog item exists for an id.
var ErrNotFound = errors.New("catalog: item not found")

// Provider supplies purchasable items. It is read-only from the checkout
// core's perspective; inventory management lives elsewhere in the platform.
type Provider interface {
	ListItems(ctx context.Context) ([]checkout.CatalogItem, error)
	GetItem(ctx context.Context, itemID string) (checkout.CatalogItem, error)
}
