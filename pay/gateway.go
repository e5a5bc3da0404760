package pay

import (
	"context"
	"net/url"
	"os"
	"strconv"

	"medibay/checkout"
)

// Gateway is the hand-off contract to the external payment surface: a
// one-way call carrying amount, reference and method. No response contract
// exists; the gateway's outcome is out of band and never reconciled here.
type Gateway interface {
	Handoff(ctx context.Context, sel checkout.PaymentSelection) (redirectURL string, err error)
}

// BankRedirect composes the URL the mobile client follows into the bank's
// own payment surface.
type BankRedirect struct {
	BaseURL string
}

func NewBankRedirectFromEnv() *BankRedirect {
	base := os.Getenv("BANK_REDIRECT_URL")
	if base == "" {
		base = "https://pay.medibay.example/redirect"
	}
	return &BankRedirect{BaseURL: base}
}

func (g *BankRedirect) Handoff(_ context.Context, sel checkout.PaymentSelection) (string, error) {
	u, err := url.Parse(g.BaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("bank", string(sel.Method))
	q.Set("amount", strconv.FormatInt(sel.Amount, 10))
	q.Set("reference", sel.Reference)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
