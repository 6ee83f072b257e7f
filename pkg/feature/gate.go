package feature

import (
	"context"
	"log/slog"
)

// Gate answers the single question handlers ask: is this flag on for this
// caller. It fails closed: any provider error, including an unknown flag,
// evaluates as disabled and is logged instead of propagated, so flag-store
// trouble can never crash the gated surface.
type Gate struct {
	provider Provider
	log      *slog.Logger
}

// NewGate wraps a Provider in fail-closed evaluation. A nil logger disables
// error logging.
func NewGate(provider Provider, log *slog.Logger) *Gate {
	return &Gate{provider: provider, log: log}
}

// IsEnabled reports whether the named flag is enabled for the caller
// identified by ctx.
func (g *Gate) IsEnabled(ctx context.Context, flagName string) bool {
	if g == nil || g.provider == nil {
		return false
	}

	enabled, err := g.provider.IsEnabled(ctx, flagName)
	if err != nil {
		if g.log != nil {
			g.log.WarnContext(ctx, "feature flag evaluation failed, treating as disabled",
				slog.String("flag", flagName),
				slog.Any("error", err))
		}
		return false
	}
	return enabled
}
