package apiversion

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrEshboboyev/api-versioning/pkg/response"
)

// Resolver resolves the {version} route parameter once per request, caches
// the result in the request context, and stamps the version headers on the
// response. An unresolvable token short-circuits with a client error before
// any handler runs.
func Resolver(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := chi.URLParam(r, "version")

			v, err := Parse(token)
			if err != nil {
				log.InfoContext(r.Context(), "rejected unsupported api version",
					slog.String("token", token))
				response.Error(w, response.ErrUnsupportedVersion)
				return
			}

			w.Header().Set("X-API-Version", v.String())
			w.Header().Set("X-Version-Features", v.Features())

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), v)))
		})
	}
}
