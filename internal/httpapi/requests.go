package httpapi

import (
	"slices"

	"github.com/google/uuid"

	"github.com/MrEshboboyev/api-versioning/internal/catalog"
	"github.com/MrEshboboyev/api-versioning/pkg/response"
)

// createProductRequest is the v3 create payload. Optional string fields left
// empty receive creation defaults; counters always start at zero.
type createProductRequest struct {
	Name            string   `json:"name"`
	DisplayName     string   `json:"displayName"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	IsDiscounted    bool     `json:"isDiscounted"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	InStock         bool     `json:"inStock"`
	Quantity        int      `json:"quantity"`
	Category        string   `json:"category"`
	Department      string   `json:"department"`
	Tags            []string `json:"tags"`
}

func (req createProductRequest) Validate() error {
	errs := response.NewValidationError()
	if req.Name == "" {
		errs.Add("name", "name is required")
	}
	if req.Price < 0 {
		errs.Add("price", "price must not be negative")
	}
	if req.Quantity < 0 {
		errs.Add("quantity", "quantity must not be negative")
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice < 0 {
		errs.Add("discountedPrice", "discountedPrice must not be negative")
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// toProduct builds the canonical record with creation defaults applied.
func (req createProductRequest) toProduct() catalog.Product {
	tags := []string{}
	if len(req.Tags) > 0 {
		tags = slices.Clone(req.Tags)
	}

	return catalog.Product{
		ID:              uuid.New(),
		Name:            req.Name,
		DisplayName:     orDefault(req.DisplayName, req.Name),
		Description:     req.Description,
		Price:           req.Price,
		Currency:        orDefault(req.Currency, catalog.DefaultCurrency),
		IsDiscounted:    req.IsDiscounted,
		DiscountedPrice: req.DiscountedPrice,
		InStock:         req.InStock,
		Quantity:        req.Quantity,
		Category:        orDefault(req.Category, catalog.DefaultCategory),
		Department:      orDefault(req.Department, catalog.DefaultDepartment),
		Tags:            tags,
	}
}

// updateProductRequest is the v3 partial update payload. Nil means "field
// absent, keep the stored value"; JSON null and a missing key are treated
// identically so a client cannot accidentally blank a field.
type updateProductRequest struct {
	Name            *string  `json:"name"`
	DisplayName     *string  `json:"displayName"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Currency        *string  `json:"currency"`
	IsDiscounted    *bool    `json:"isDiscounted"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	InStock         *bool    `json:"inStock"`
	Quantity        *int     `json:"quantity"`
	Category        *string  `json:"category"`
	Department      *string  `json:"department"`
	Tags            []string `json:"tags"`
}

func (req updateProductRequest) Validate() error {
	errs := response.NewValidationError()
	if req.Name != nil && *req.Name == "" {
		errs.Add("name", "name must not be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		errs.Add("price", "price must not be negative")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errs.Add("quantity", "quantity must not be negative")
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice < 0 {
		errs.Add("discountedPrice", "discountedPrice must not be negative")
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (req updateProductRequest) toPatch() catalog.Patch {
	var tags []string
	if req.Tags != nil {
		tags = slices.Clone(req.Tags)
	}

	return catalog.Patch{
		Name:            req.Name,
		DisplayName:     req.DisplayName,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        req.Currency,
		IsDiscounted:    req.IsDiscounted,
		DiscountedPrice: req.DiscountedPrice,
		InStock:         req.InStock,
		Quantity:        req.Quantity,
		Category:        req.Category,
		Department:      req.Department,
		Tags:            tags,
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
