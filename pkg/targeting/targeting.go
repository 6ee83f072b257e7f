// Package targeting derives the per-request identity used for personalized
// feature flag evaluation. The context is a pure function of the inbound
// request headers and is computed once per request by the middleware.
package targeting

import (
	"context"
	"net/http"
	"strings"
)

const (
	// UserIDHeader carries the caller's user id. In a real deployment this
	// would come from authentication claims.
	UserIDHeader = "X-User-Id"
	// GroupsHeader carries a comma-separated list of group memberships.
	GroupsHeader = "X-User-Groups"
)

// Context identifies a caller for feature flag targeting.
// Both fields may be empty for anonymous requests.
type Context struct {
	UserID string
	Groups []string
}

// FromRequest extracts the targeting context from request headers.
func FromRequest(r *http.Request) Context {
	return Context{
		UserID: r.Header.Get(UserIDHeader),
		Groups: parseGroups(r.Header.Get(GroupsHeader)),
	}
}

func parseGroups(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	groups := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return nil
	}
	return groups
}

type contextKey struct{}

// WithContext stores the targeting context in ctx.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext returns the targeting context stored in ctx, or a zero
// Context when none was set.
func FromContext(ctx context.Context) Context {
	if ctx == nil {
		return Context{}
	}
	tc, _ := ctx.Value(contextKey{}).(Context)
	return tc
}

// Middleware parses the targeting headers once and caches the result in the
// request context for downstream flag evaluation.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID is a feature strategy extractor reading the user id from ctx.
func UserID(ctx context.Context) string {
	return FromContext(ctx).UserID
}

// Groups is a feature strategy extractor reading group memberships from ctx.
func Groups(ctx context.Context) []string {
	return FromContext(ctx).Groups
}
