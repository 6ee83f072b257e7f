// Package httpapi exposes the versioned product catalog over HTTP. Handlers
// orchestrate version resolution, feature gating, store access and response
// projection; they contain no mapping logic of their own.
package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrEshboboyev/api-versioning/internal/apiversion"
	"github.com/MrEshboboyev/api-versioning/internal/catalog"
	"github.com/MrEshboboyev/api-versioning/internal/projection"
	"github.com/MrEshboboyev/api-versioning/pkg/binder"
	"github.com/MrEshboboyev/api-versioning/pkg/feature"
	"github.com/MrEshboboyev/api-versioning/pkg/response"
)

// ProductHandler serves every versioned product endpoint.
type ProductHandler struct {
	store catalog.Store
	gate  *feature.Gate
	log   *slog.Logger
}

// NewProductHandler wires the handler's collaborators.
func NewProductHandler(store catalog.Store, gate *feature.Gate, log *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, gate: gate, log: log}
}

// List returns all products in the shape of the resolved version. Listing is
// available in every version and is not gated.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := apiversion.FromContext(ctx)

	products, err := h.store.List(ctx)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.log.InfoContext(ctx, "listed products",
		slog.Int("count", len(products)),
		slog.Int("version", v.Major))
	_ = response.JSON(w, http.StatusOK, projection.Many(products, v.Major))
}

// Get returns one product in the shape of the resolved version. v1 and v2
// require their feature flag; a disabled flag is indistinguishable from a
// missing record on the wire.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := apiversion.FromContext(ctx)

	switch v.Major {
	case 1:
		if !h.gate.IsEnabled(ctx, FlagUseV1ProductAPI) {
			h.renderError(w, catalog.ErrProductNotFound)
			return
		}
	case 2:
		if !h.gate.IsEnabled(ctx, FlagUseV2ProductAPI) {
			h.renderError(w, catalog.ErrProductNotFound)
			return
		}
	}

	id, err := productID(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	p, err := h.store.Get(ctx, id)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.log.InfoContext(ctx, "retrieved product",
		slog.String("product_id", id.String()),
		slog.Int("version", v.Major))
	_ = response.JSON(w, http.StatusOK, projection.One(p, v.Major))
}

// Create adds a product. v3 only.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if v := apiversion.FromContext(ctx); v.Major != 3 {
		h.renderError(w, response.ErrMethodNotAllowed)
		return
	}

	var req createProductRequest
	if err := binder.JSON(r, &req); err != nil {
		h.renderError(w, response.ErrBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.renderError(w, err)
		return
	}

	p := req.toProduct()
	if err := h.store.Create(ctx, p); err != nil {
		h.renderError(w, err)
		return
	}

	h.log.InfoContext(ctx, "created product", slog.String("product_id", p.ID.String()))
	w.Header().Set("Location", fmt.Sprintf("/api/v3/products/%s", p.ID))
	_ = response.JSON(w, http.StatusCreated, projection.V3(p))
}

// Update applies a partial update. v3 only; absent fields are preserved.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if v := apiversion.FromContext(ctx); v.Major != 3 {
		h.renderError(w, response.ErrMethodNotAllowed)
		return
	}

	id, err := productID(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	var req updateProductRequest
	if err := binder.JSON(r, &req); err != nil {
		h.renderError(w, response.ErrBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.renderError(w, err)
		return
	}

	if _, err := h.store.Update(ctx, id, req.toPatch()); err != nil {
		h.renderError(w, err)
		return
	}

	h.log.InfoContext(ctx, "updated product", slog.String("product_id", id.String()))
	response.NoContent(w)
}

// Delete removes a product. Available from v2 up.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if v := apiversion.FromContext(ctx); v.Major < 2 {
		h.renderError(w, response.ErrMethodNotAllowed)
		return
	}

	id, err := productID(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		h.renderError(w, err)
		return
	}

	h.log.InfoContext(ctx, "deleted product", slog.String("product_id", id.String()))
	response.NoContent(w)
}

// Analytics returns the analytics sub-shape for one product. v3 only.
func (h *ProductHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if v := apiversion.FromContext(ctx); v.Major != 3 {
		h.renderError(w, response.ErrMethodNotAllowed)
		return
	}

	id, err := productID(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	p, err := h.store.Get(ctx, id)
	if err != nil {
		h.renderError(w, err)
		return
	}

	_ = response.JSON(w, http.StatusOK, projection.Analytics(p))
}

// RecordView increments the product's view counter by one. v3 only.
func (h *ProductHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if v := apiversion.FromContext(ctx); v.Major != 3 {
		h.renderError(w, response.ErrMethodNotAllowed)
		return
	}

	id, err := productID(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.store.IncrementViews(ctx, id); err != nil {
		h.renderError(w, err)
		return
	}

	response.NoContent(w)
}

// productID parses the {id} route parameter. A malformed id behaves like a
// missing record, matching the upstream route constraint.
func productID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, catalog.ErrProductNotFound
	}
	return id, nil
}

func (h *ProductHandler) renderError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrProductNotFound) {
		response.Error(w, response.ErrNotFound)
		return
	}
	response.Error(w, err)
}
