package projection

import "github.com/google/uuid"

// V1 wire shape: the original flat response, fields passed through verbatim.
type ProductV1 struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// V2 wire shape: product and inventory split into nested blocks.
type ProductV2 struct {
	ID        uuid.UUID     `json:"id"`
	Product   ProductInfoV2 `json:"product"`
	Inventory InventoryV2   `json:"inventory"`
}

type ProductInfoV2 struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Pricing     PricingV2 `json:"pricing"`
}

type PricingV2 struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Discounted bool    `json:"discounted"`
}

type InventoryV2 struct {
	InStock  bool `json:"inStock"`
	Quantity int  `json:"quantity"`
}

// V3 wire shape: v2 extended with description, tags, analytics, category and
// several documented-but-unimplemented collections. Those collections are
// part of the published shape and must always be present as empty sequences.
type ProductV3 struct {
	ID        uuid.UUID     `json:"id"`
	Product   ProductInfoV3 `json:"product"`
	Inventory InventoryV3   `json:"inventory"`
	Analytics AnalyticsV3   `json:"analytics"`
	Category  CategoryV3    `json:"category"`
}

type ProductInfoV3 struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Pricing     PricingV3   `json:"pricing"`
	Variants    []VariantV3 `json:"variants"`
}

type PricingV3 struct {
	Amount           float64             `json:"amount"`
	Currency         string              `json:"currency"`
	Discounted       bool                `json:"discounted"`
	DiscountedAmount *float64            `json:"discountedAmount"`
	PriceHistory     []PriceHistoryEntry `json:"priceHistory"`
}

type InventoryV3 struct {
	InStock          bool                    `json:"inStock"`
	Quantity         int                     `json:"quantity"`
	ReservedQuantity int                     `json:"reservedQuantity"`
	Warehouse        WarehouseV3             `json:"warehouse"`
	InventoryHistory []InventoryHistoryEntry `json:"inventoryHistory"`
}

type WarehouseV3 struct {
	Location string `json:"location"`
	Code     string `json:"code"`
}

type AnalyticsV3 struct {
	Views        int64    `json:"views"`
	Purchases    int64    `json:"purchases"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviewsCount"`
	TopReviews   []Review `json:"topReviews"`
}

type CategoryV3 struct {
	PrimaryCategory string   `json:"primaryCategory"`
	SubCategories   []string `json:"subCategories"`
	Department      string   `json:"department"`
}

// Entry types for the stub collections. No subsystem produces them yet; they
// exist so the shapes are fully specified for clients.

type VariantV3 struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

type PriceHistoryEntry struct {
	Price      float64 `json:"price"`
	RecordedAt string  `json:"recordedAt"`
}

type InventoryHistoryEntry struct {
	Quantity   int    `json:"quantity"`
	RecordedAt string `json:"recordedAt"`
}

type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}
