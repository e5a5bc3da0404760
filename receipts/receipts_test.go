package receipts

import (
	"strings"
	"testing"

	"medibay/checkout"
)

func TestRupeesRoundsOnlyAtPresentation(t *testing.T) {
	cases := map[int64]string{
		0:    "Rs. 0.00",
		5:    "Rs. 0.05",
		5797: "Rs. 57.97",
		100:  "Rs. 1.00",
	}
	for cents, want := range cases {
		if got := rupees(cents); got != want {
			t.Errorf("rupees(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestQRPayloadIsSignedAndCarriesReference(t *testing.T) {
	draft := &checkout.OrderDraft{Reference: "ORD-ABC", Total: 5797}
	payload := qrPayload(draft)

	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		t.Fatalf("payload %q must have reference|amount|signature", payload)
	}
	if parts[0] != "ORD-ABC" || parts[1] != "5797" {
		t.Fatalf("payload fields wrong: %q", payload)
	}
	if parts[2] == "" {
		t.Fatal("signature missing")
	}
	if payload != qrPayload(draft) {
		t.Fatal("payload must be deterministic for one draft")
	}
}
