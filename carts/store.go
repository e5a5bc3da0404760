package carts

import (
	"errors"
	"sync"

	"medibay/checkout"
)

// ErrDraftNotFound is returned when a reference names no live draft for
// the session.
var ErrDraftNotFound = errors.New("carts: draft not found")

// Session owns one user's cart and the drafts built from it. The checkout
// core has no internal locking, so every operation here serializes through
// the session mutex; a cart is never touched from two goroutines at once.
type Session struct {
	mu     sync.Mutex
	cart   *checkout.Cart
	drafts map[string]*checkout.Handoff
}

func newSession() *Session {
	return &Session{
		cart:   checkout.NewCart(),
		drafts: make(map[string]*checkout.Handoff),
	}
}

// AddItem puts qty units of the item into the cart. qty below 1 is
// normalized to 1.
func (s *Session) AddItem(item checkout.CatalogItem, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddItem(item); err != nil {
		return err
	}
	if qty > 1 {
		return s.cart.ChangeQuantity(item.ID, qty-1)
	}
	return nil
}

func (s *Session) ChangeQuantity(itemID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ChangeQuantity(itemID, delta)
}

// Snapshot returns the current lines and total.
func (s *Session) Snapshot() ([]checkout.CartLine, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Total()
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Checkout snapshots the cart into a draft and registers its handoff.
// The cart itself is kept until the handoff completes or the draft is
// abandoned.
func (s *Session) Checkout(buyer checkout.BuyerContact) (*checkout.OrderDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := checkout.BuildDraft(s.cart, buyer)
	if err != nil {
		return nil, err
	}
	s.drafts[draft.Reference] = checkout.NewHandoff(draft)
	return draft, nil
}

// Draft looks up a live draft by reference.
func (s *Session) Draft(reference string) (*checkout.OrderDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[reference]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return h.Draft(), nil
}

// Pay runs the payment handoff for the referenced draft and, on success,
// clears the cart the draft was built from.
func (s *Session) Pay(reference string, method checkout.PaymentMethod) (checkout.PaymentSelection, *checkout.OrderDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[reference]
	if !ok {
		return checkout.PaymentSelection{}, nil, ErrDraftNotFound
	}
	sel, err := h.ChooseMethod(method)
	if err != nil {
		return checkout.PaymentSelection{}, nil, err
	}
	s.cart.Clear()
	return sel, h.Draft(), nil
}

// Abandon discards a draft that has not been handed off. Handed-off drafts
// stay registered so a duplicate handoff keeps failing loudly.
func (s *Session) Abandon(reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.drafts[reference]
	if !ok {
		return ErrDraftNotFound
	}
	if h.Done() {
		return checkout.ErrAlreadyHandedOff
	}
	delete(s.drafts, reference)
	return nil
}

// Store hands out the per-user session aggregates. Sessions are ephemeral:
// nothing here is persisted, and all cart state dies with the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Session returns the cart session for a user, creating it on first use.
func (st *Store) Session(userID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s = newSession()
	st.sessions[userID] = s
	return s
}

// Drop discards a user's session entirely, e.g. on logout.
func (st *Store) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
