package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrEshboboyev/api-versioning/internal/apiversion"
	"github.com/MrEshboboyev/api-versioning/internal/catalog"
	"github.com/MrEshboboyev/api-versioning/pkg/feature"
	"github.com/MrEshboboyev/api-versioning/pkg/response"
	"github.com/MrEshboboyev/api-versioning/pkg/targeting"
)

// Router builds the full API surface. The versioned tree handles
// /api/v{1,2,3}/products; the unversioned tree is an alias that resolves to
// the default version (v1).
func Router(store catalog.Store, gate *feature.Gate, log *slog.Logger) chi.Router {
	h := NewProductHandler(store, gate, log)

	r := chi.NewRouter()
	r.Use(targeting.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, response.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, response.ErrMethodNotAllowed)
	})

	r.Route("/api/{version}/products", func(pr chi.Router) {
		pr.Use(apiversion.Resolver(log))
		mountProductRoutes(pr, h)
	})

	// Requests without a version segment assume the default version.
	r.Route("/api/products", func(pr chi.Router) {
		pr.Use(apiversion.Resolver(log))
		mountProductRoutes(pr, h)
	})

	return r
}

func mountProductRoutes(r chi.Router, h *ProductHandler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/analytics", h.Analytics)
	r.Post("/{id}/view", h.RecordView)
}
