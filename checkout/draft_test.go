package checkout

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildDraftSnapshot(t *testing.T) {
	c := NewCart()
	_ = c.AddItem(item("A", 1599))
	_ = c.ChangeQuantity("A", 1) // qty 2
	_ = c.AddItem(item("B", 2599))

	buyer := BuyerContact{Name: "Asha", Email: "asha@example.com", Phone: "0300-1234567"}
	draft, err := BuildDraft(c, buyer)
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}

	// 2 x 15.99 + 1 x 25.99 = 57.97
	if draft.Total != 5797 {
		t.Fatalf("Total = %d cents, want 5797", draft.Total)
	}
	if !strings.HasPrefix(draft.Reference, "ORD-") || len(draft.Reference) <= len("ORD-") {
		t.Fatalf("malformed reference %q", draft.Reference)
	}
	if draft.Buyer != buyer {
		t.Fatalf("buyer contact not stored verbatim: %+v", draft.Buyer)
	}

	// the draft is a value snapshot, not a live view
	_ = c.AddItem(item("C", 9999))
	c.Clear()
	if draft.Total != 5797 || len(draft.Lines) != 2 {
		t.Fatalf("draft mutated by later cart changes: %+v", draft)
	}
}

func TestBuildDraftEmptyCart(t *testing.T) {
	draft, err := BuildDraft(NewCart(), BuyerContact{})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if draft != nil {
		t.Fatalf("no draft must be produced on failure")
	}
}

func TestReferencesDoNotCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		ref := NewReference()
		if seen[ref] {
			t.Fatalf("duplicate reference %q after %d draws", ref, i)
		}
		seen[ref] = true
	}
}

func TestDraftsInRapidSuccessionGetDistinctReferences(t *testing.T) {
	a := NewCart()
	_ = a.AddItem(item("A", 100))
	b := NewCart()
	_ = b.AddItem(item("B", 200))

	first, err := BuildDraft(a, BuyerContact{})
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	second, err := BuildDraft(b, BuyerContact{})
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	if first.Reference == second.Reference {
		t.Fatalf("two drafts share reference %q", first.Reference)
	}
}
