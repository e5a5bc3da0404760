package carts

import (
	"errors"
	"sync"
	"testing"

	"medibay/checkout"
)

func med(id string, cents int64) checkout.CatalogItem {
	return checkout.CatalogItem{ID: id, Name: "med " + id, UnitPrice: cents, StockLevel: 5}
}

func TestSessionCheckoutAndPay(t *testing.T) {
	st := NewStore()
	s := st.Session("user1")

	if err := s.AddItem(med("A", 1599), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(med("B", 2599), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	draft, err := s.Checkout(checkout.BuyerContact{Name: "Sana"})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if draft.Total != 5797 {
		t.Fatalf("draft total = %d, want 5797", draft.Total)
	}

	sel, paid, err := s.Pay(draft.Reference, "hbl")
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if sel.Amount != draft.Total || sel.Reference != draft.Reference {
		t.Fatalf("selection does not match draft: %+v", sel)
	}
	if paid.Reference != draft.Reference {
		t.Fatalf("wrong draft returned: %q", paid.Reference)
	}

	// cart is cleared after a completed handoff
	lines, total := s.Snapshot()
	if len(lines) != 0 || total != 0 {
		t.Fatalf("cart not cleared: %d lines, total %d", len(lines), total)
	}

	// the handed-off draft keeps rejecting duplicates
	if _, _, err := s.Pay(draft.Reference, "hbl"); !errors.Is(err, checkout.ErrAlreadyHandedOff) {
		t.Fatalf("expected ErrAlreadyHandedOff, got %v", err)
	}
}

func TestPayUnknownReference(t *testing.T) {
	s := NewStore().Session("user1")
	if _, _, err := s.Pay("ORD-NOPE", "hbl"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestAbandon(t *testing.T) {
	s := NewStore().Session("user1")
	_ = s.AddItem(med("A", 100), 1)

	draft, err := s.Checkout(checkout.BuyerContact{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if err := s.Abandon(draft.Reference); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, err := s.Draft(draft.Reference); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("abandoned draft still visible")
	}

	// abandoning a handed-off draft is refused
	draft2, _ := s.Checkout(checkout.BuyerContact{})
	if _, _, err := s.Pay(draft2.Reference, "ubl"); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if err := s.Abandon(draft2.Reference); !errors.Is(err, checkout.ErrAlreadyHandedOff) {
		t.Fatalf("expected ErrAlreadyHandedOff, got %v", err)
	}
}

func TestStoreReturnsSameSession(t *testing.T) {
	st := NewStore()
	if st.Session("u") != st.Session("u") {
		t.Fatal("Session must be stable per user")
	}
	if st.Session("u") == st.Session("v") {
		t.Fatal("sessions must not be shared across users")
	}
}

func TestConcurrentMutationsStaySerialized(t *testing.T) {
	s := NewStore().Session("user1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AddItem(med("A", 250), 1)
		}()
	}
	wg.Wait()

	lines, total := s.Snapshot()
	if len(lines) != 1 || lines[0].Quantity != 50 {
		t.Fatalf("expected one line with quantity 50, got %+v", lines)
	}
	if total != 50*250 {
		t.Fatalf("total = %d, want %d", total, 50*250)
	}
}
