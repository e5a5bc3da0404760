package pay

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"medibay/checkout"
)

func TestSupported(t *testing.T) {
	if !Supported("hbl") {
		t.Fatal("hbl must be a supported method")
	}
	if Supported("bitcoin") {
		t.Fatal("unknown methods must be rejected")
	}
}

func TestBanksReturnsCopy(t *testing.T) {
	list := Banks()
	if len(list) == 0 {
		t.Fatal("bank list must not be empty")
	}
	list[0].Name = "mutated"
	if Banks()[0].Name == "mutated" {
		t.Fatal("Banks must not expose internal state")
	}
}

func TestBankRedirectCarriesSelectionVerbatim(t *testing.T) {
	g := &BankRedirect{BaseURL: "https://pay.example/redirect"}
	sel := checkout.PaymentSelection{Method: "meezan", Amount: 5797, Reference: "ORD-TEST123"}

	redirect, err := g.Handoff(context.Background(), sel)
	if err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if !strings.HasPrefix(redirect, "https://pay.example/redirect?") {
		t.Fatalf("unexpected redirect %q", redirect)
	}

	u, err := url.Parse(redirect)
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	q := u.Query()
	if q.Get("bank") != "meezan" || q.Get("amount") != "5797" || q.Get("reference") != "ORD-TEST123" {
		t.Fatalf("selection not carried verbatim: %v", q)
	}
}
