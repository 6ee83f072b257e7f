// Package apiversion resolves the requested API version from the URL path.
// It does parsing and defaulting only; which operations a version allows is
// the request handlers' concern.
package apiversion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedVersion indicates a version token that does not resolve to a
// supported major version. It surfaces as a client error, distinct from not
// found.
var ErrUnsupportedVersion = errors.New("unsupported api version")

// Version is a resolved API version.
type Version struct {
	Major int
	Minor int
}

// Default is assumed when the request carries no version segment.
var Default = Version{Major: 1, Minor: 0}

// String renders the version for the X-API-Version response header.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Features names the capability tier of a major version, reported in the
// X-Version-Features response header.
func (v Version) Features() string {
	switch v.Major {
	case 1:
		return "basic"
	case 2:
		return "enhanced"
	case 3:
		return "advanced"
	default:
		return ""
	}
}

// Parse resolves a URL path token such as "v1", "v2.0" or "v3" to a
// supported Version. An empty token resolves to the default version.
func Parse(token string) (Version, error) {
	if token == "" {
		return Default, nil
	}

	rest, ok := strings.CutPrefix(token, "v")
	if !ok || rest == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, token)
	}

	majorPart, minorPart, hasMinor := strings.Cut(rest, ".")

	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, token)
	}

	minor := 0
	if hasMinor {
		minor, err = strconv.Atoi(minorPart)
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, token)
		}
	}

	if major < 1 || major > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, token)
	}

	return Version{Major: major, Minor: minor}, nil
}

type contextKey struct{}

// WithContext stores the resolved version in ctx.
func WithContext(ctx context.Context, v Version) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromContext returns the resolved version, falling back to the default when
// none was stored.
func FromContext(ctx context.Context) Version {
	if ctx == nil {
		return Default
	}
	v, ok := ctx.Value(contextKey{}).(Version)
	if !ok {
		return Default
	}
	return v
}
