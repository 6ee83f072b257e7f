// Package catalog holds the canonical product record and its stores. There
// is exactly one Product per id; every API version projects its response
// from the same snapshot of that record.
package catalog

import "github.com/google/uuid"

// Default fallback values substituted for empty optional fields, both at
// creation time and when projecting responses.
const (
	DefaultCurrency   = "USD"
	DefaultCategory   = "General"
	DefaultDepartment = "Default"
)

// Product is the canonical stored entity. Tags are kept as a native ordered
// sequence; the old comma-joined representation silently corrupted tags
// containing commas.
type Product struct {
	ID              uuid.UUID
	Name            string
	DisplayName     string
	Description     string
	Price           float64
	Currency        string
	IsDiscounted    bool
	DiscountedPrice *float64
	InStock         bool
	Quantity        int
	Category        string
	Department      string
	Tags            []string
	Views           int64
	Purchases       int64
	Rating          float64
	ReviewsCount    int
}
