package checkout

// PaymentMethod identifies one entry of the external payment-method set
// (the bank list). The concrete set is owned by the pay package; this
// layer only copies the chosen value through.
type PaymentMethod string

// PaymentSelection is the minimal payload handed to the external payment
// surface. Amount and Reference are copied verbatim from the draft.
type PaymentSelection struct {
	Method    PaymentMethod `json:"method"`
	Amount    int64         `json:"amountCents"`
	Reference string        `json:"reference"`
}

type handoffState int

const (
	awaitingMethod handoffState = iota
	handedOff
)

// Handoff tracks the payment handoff for one order draft. Choosing a
// method and handing off are a single atomic step; once handed off the
// draft can never be handed off again.
type Handoff struct {
	draft *OrderDraft
	state handoffState
}

func NewHandoff(draft *OrderDraft) *Handoff {
	return &Handoff{draft: draft}
}

// Draft returns the draft this handoff guards.
func (h *Handoff) Draft() *OrderDraft {
	return h.draft
}

// Done reports whether the draft has already been handed off.
func (h *Handoff) Done() bool {
	return h.state == handedOff
}

// ChooseMethod builds the PaymentSelection for the chosen method and
// transitions the handoff to its terminal state. A second call fails with
// ErrAlreadyHandedOff; the gateway's out-of-band result is never observed
// here.
func (h *Handoff) ChooseMethod(method PaymentMethod) (PaymentSelection, error) {
	if h.state == handedOff {
		return PaymentSelection{}, ErrAlreadyHandedOff
	}
	h.state = handedOff
	return PaymentSelection{
		Method:    method,
		Amount:    h.draft.Total,
		Reference: h.draft.Reference,
	}, nil
}
