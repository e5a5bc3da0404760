package models

import "time"

// Medicine is a catalog document as stored by the inventory side of the
// platform. The checkout core only sees the CatalogItem projection.
type Medicine struct {
	ItemID       string    `json:"itemId" bson:"itemId"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"` // e.g. "tablet", "syrup", "device"
	Manufacturer string    `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	PriceCents   int64     `json:"priceCents" bson:"priceCents"`
	StockLevel   int       `json:"stockLevel" bson:"stockLevel"` // advisory only
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
