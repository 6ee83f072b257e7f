// Package projection is the pure mapping layer from the canonical product
// record to the per-version wire shapes. Projection has no side effects and
// no I/O: the same record always projects to the same output.
package projection

import (
	"slices"

	"github.com/MrEshboboyev/api-versioning/internal/catalog"
)

// Warehouse identity reported by v3. There is no warehouse subsystem; every
// product ships from the primary location.
const (
	WarehouseLocation = "Primary Warehouse"
	WarehouseCode     = "WH-001"
)

// V1 projects the flat v1 shape. No defaulting: fields pass through as stored.
func V1(p catalog.Product) ProductV1 {
	return ProductV1{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

// V2 projects the nested v2 shape, substituting the display name and
// currency fallbacks for empty source fields.
func V2(p catalog.Product) ProductV2 {
	return ProductV2{
		ID: p.ID,
		Product: ProductInfoV2{
			Name:        p.Name,
			DisplayName: fallback(p.DisplayName, p.Name),
			Pricing: PricingV2{
				Amount:     p.Price,
				Currency:   fallback(p.Currency, catalog.DefaultCurrency),
				Discounted: p.IsDiscounted,
			},
		},
		Inventory: InventoryV2{
			InStock:  p.InStock,
			Quantity: p.Quantity,
		},
	}
}

// V3 projects the full v3 shape. Every stub collection is emitted as an
// empty sequence, never null and never omitted; numeric and boolean fields
// are never defaulted.
func V3(p catalog.Product) ProductV3 {
	return ProductV3{
		ID: p.ID,
		Product: ProductInfoV3{
			Name:        p.Name,
			DisplayName: fallback(p.DisplayName, p.Name),
			Description: p.Description,
			Tags:        projectTags(p.Tags),
			Pricing: PricingV3{
				Amount:           p.Price,
				Currency:         fallback(p.Currency, catalog.DefaultCurrency),
				Discounted:       p.IsDiscounted,
				DiscountedAmount: p.DiscountedPrice,
				PriceHistory:     []PriceHistoryEntry{},
			},
			Variants: []VariantV3{},
		},
		Inventory: InventoryV3{
			InStock:          p.InStock,
			Quantity:         p.Quantity,
			ReservedQuantity: 0,
			Warehouse: WarehouseV3{
				Location: WarehouseLocation,
				Code:     WarehouseCode,
			},
			InventoryHistory: []InventoryHistoryEntry{},
		},
		Analytics: Analytics(p),
		Category: CategoryV3{
			PrimaryCategory: fallback(p.Category, catalog.DefaultCategory),
			SubCategories:   []string{},
			Department:      fallback(p.Department, catalog.DefaultDepartment),
		},
	}
}

// Analytics projects the v3 analytics sub-shape on its own, for the
// analytics endpoint.
func Analytics(p catalog.Product) AnalyticsV3 {
	return AnalyticsV3{
		Views:        p.Views,
		Purchases:    p.Purchases,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		TopReviews:   []Review{},
	}
}

// One dispatches a single product to the shape for the given major version.
// Callers are expected to pass a resolved (already validated) major.
func One(p catalog.Product, major int) any {
	switch major {
	case 1:
		return V1(p)
	case 2:
		return V2(p)
	default:
		return V3(p)
	}
}

// Many projects a product list for the given major version. The result
// always serializes as a JSON array, even when empty.
func Many(products []catalog.Product, major int) any {
	switch major {
	case 1:
		result := make([]ProductV1, 0, len(products))
		for _, p := range products {
			result = append(result, V1(p))
		}
		return result
	case 2:
		result := make([]ProductV2, 0, len(products))
		for _, p := range products {
			result = append(result, V2(p))
		}
		return result
	default:
		result := make([]ProductV3, 0, len(products))
		for _, p := range products {
			result = append(result, V3(p))
		}
		return result
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func projectTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	return slices.Clone(tags)
}
