package models

import "time"

// OrderLine is one archived item-quantity pairing.
type OrderLine struct {
	ItemID     string `json:"itemId" bson:"itemId"`
	Name       string `json:"name" bson:"name"`
	PriceCents int64  `json:"priceCents" bson:"priceCents"`
	Quantity   int    `json:"quantity" bson:"quantity"`
}

// Order is the durable record written after a successful payment handoff.
// The checkout core never touches this; archiving is a separate
// collaborator layered on top of the handoff flow.
type Order struct {
	OrderID       string      `json:"orderId" bson:"orderId"` // the draft reference
	UserID        string      `json:"userId" bson:"userId"`
	Lines         []OrderLine `json:"lines" bson:"lines"`
	TotalCents    int64       `json:"totalCents" bson:"totalCents"`
	BuyerName     string      `json:"buyerName" bson:"buyerName"`
	BuyerEmail    string      `json:"buyerEmail" bson:"buyerEmail"`
	BuyerPhone    string      `json:"buyerPhone" bson:"buyerPhone"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentMethod"`
	Status        string      `json:"status" bson:"status"` // "handed_off"; gateway results are out of band
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
}
