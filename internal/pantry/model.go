package pantry

import (
	"errors"
	"time"

	"fresh-pantry/internal/shared"
)

// ErrNotFound is returned when a pantry item id does not exist.
var ErrNotFound = errors.New("pantry item not found")

// ErrConflict is returned when an optimistic-concurrency check fails.
// The caller is expected to re-read the item and retry.
var ErrConflict = errors.New("pantry item was modified concurrently")

// Item represents a single stock row in the pantry.
type Item struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	Category        shared.Category `json:"category"`
	MinThreshold    float64         `json:"min_threshold"`
	TypicalPurchase float64         `json:"typical_purchase"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Version backs the per-item optimistic concurrency check. It is a
	// storage concern and never serialized to API responses.
	Version int64 `json:"-"`
}

// ImportRecord is a pantry-shaped record produced by an ingestion
// collaborator (receipt scan, barcode lookup). FillLevel is the estimated
// remaining fraction of the nominal package size for scanned products;
// zero means unknown and leaves Quantity untouched.
type ImportRecord struct {
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	FillLevel  float64    `json:"fill_level,omitempty"`
}

// EffectiveQuantity applies the fill level to the nominal quantity.
func (r ImportRecord) EffectiveQuantity() float64 {
	if r.FillLevel > 0 && r.FillLevel < 1 {
		return r.Quantity * r.FillLevel
	}
	return r.Quantity
}
