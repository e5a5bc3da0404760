package checkout

import "errors"

var (
	// ErrInvalidItem is returned when a catalog item fails basic sanity
	// checks (negative unit price) at the moment it enters a cart.
	ErrInvalidItem = errors.New("checkout: invalid catalog item")

	// ErrLineNotFound is returned by quantity changes that name an item
	// the cart does not hold.
	ErrLineNotFound = errors.New("checkout: cart line not found")

	// ErrEmptyCart is returned when a draft is built from a cart with no lines.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrAlreadyHandedOff is returned on a second handoff attempt for the
	// same draft.
	ErrAlreadyHandedOff = errors.New("checkout: draft already handed off")
)
