package checkout

import (
	"errors"
	"testing"
)

func draftForTest(t *testing.T) *OrderDraft {
	t.Helper()
	c := NewCart()
	_ = c.AddItem(item("A", 1599))
	_ = c.AddItem(item("B", 2599))
	d, err := BuildDraft(c, BuyerContact{Name: "Bilal"})
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	return d
}

func TestChooseMethodCopiesDraftVerbatim(t *testing.T) {
	d := draftForTest(t)
	h := NewHandoff(d)

	sel, err := h.ChooseMethod("hbl")
	if err != nil {
		t.Fatalf("ChooseMethod: %v", err)
	}
	if sel.Amount != d.Total {
		t.Fatalf("amount %d does not match draft total %d", sel.Amount, d.Total)
	}
	if sel.Reference != d.Reference {
		t.Fatalf("reference %q does not match draft %q", sel.Reference, d.Reference)
	}
	if sel.Method != "hbl" {
		t.Fatalf("method = %q", sel.Method)
	}
	if !h.Done() {
		t.Fatalf("handoff must be terminal after ChooseMethod")
	}
}

func TestDuplicateHandoffRejected(t *testing.T) {
	h := NewHandoff(draftForTest(t))
	if _, err := h.ChooseMethod("ubl"); err != nil {
		t.Fatalf("first ChooseMethod: %v", err)
	}
	if _, err := h.ChooseMethod("ubl"); !errors.Is(err, ErrAlreadyHandedOff) {
		t.Fatalf("expected ErrAlreadyHandedOff, got %v", err)
	}
}
