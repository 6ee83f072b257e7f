package catalog

// Patch is a partial update of a Product. A nil field means "absent, keep
// the stored value"; a non-nil field overwrites. Pointer fields make absence
// explicit instead of overloading zero values, which matters for fields like
// DiscountedPrice where null is a legitimate stored state.
type Patch struct {
	Name            *string
	DisplayName     *string
	Description     *string
	Price           *float64
	Currency        *string
	IsDiscounted    *bool
	DiscountedPrice *float64
	InStock         *bool
	Quantity        *int
	Category        *string
	Department      *string
	Tags            []string
}

// Apply merges the patch onto p field by field.
func (patch Patch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.IsDiscounted != nil {
		p.IsDiscounted = *patch.IsDiscounted
	}
	if patch.DiscountedPrice != nil {
		p.DiscountedPrice = patch.DiscountedPrice
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
}
