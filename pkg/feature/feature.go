// Package feature implements named boolean feature flags with per-caller
// rollout strategies. Evaluation is a pure function of (flag, context):
// strategies read caller identity from the request context and never mutate
// state, so a flag can be queried concurrently from every request.
package feature

import "context"

// Flag represents a feature flag with its rollout configuration.
type Flag struct {
	Name        string
	Description string
	Enabled     bool
	Strategy    Strategy
}

// Strategy defines how a feature rolls out to individual callers.
type Strategy interface {
	// Evaluate determines if the feature should be enabled for a specific
	// context. The context carries the data the strategy needs (user id,
	// groups, etc.).
	Evaluate(ctx context.Context) (bool, error)
}

// TargetCriteria defines targeting criteria for a flag.
type TargetCriteria struct {
	UserIDs    []string
	Groups     []string
	Percentage *int
	// AllowList takes precedence over other criteria except DenyList.
	AllowList []string
	// DenyList takes precedence over all other criteria.
	DenyList []string
}

// Extractor function types for retrieving caller data from context. They
// keep strategies decoupled from how the application stores identity.
type (
	UserIDExtractor     func(ctx context.Context) string
	UserGroupsExtractor func(ctx context.Context) []string
)

// Provider resolves feature flags by name.
type Provider interface {
	// IsEnabled checks if a feature flag is enabled for the given context.
	// If the flag doesn't exist, it returns false and ErrFlagNotFound.
	IsEnabled(ctx context.Context, flagName string) (bool, error)

	// GetFlag returns the full flag configuration.
	// If the flag doesn't exist, it returns nil and ErrFlagNotFound.
	GetFlag(ctx context.Context, flagName string) (*Flag, error)
}
