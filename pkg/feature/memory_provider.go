package feature

import (
	"context"
	"errors"
	"sync"
)

// MemoryProvider is an in-memory implementation of the Provider interface.
// Flag configuration is fixed at construction; evaluation is concurrent-safe.
type MemoryProvider struct {
	flags map[string]*Flag
	mu    sync.RWMutex
}

// NewMemoryProvider creates an in-memory feature flag provider holding the
// given flags.
func NewMemoryProvider(initialFlags ...*Flag) (*MemoryProvider, error) {
	provider := &MemoryProvider{
		flags: make(map[string]*Flag, len(initialFlags)),
	}

	for _, flag := range initialFlags {
		if flag == nil {
			continue
		}
		if flag.Name == "" {
			return nil, errors.Join(ErrInvalidFlag, errors.New("flag name cannot be empty"))
		}
		flagCopy := *flag
		provider.flags[flag.Name] = &flagCopy
	}

	return provider, nil
}

// IsEnabled checks if a flag is enabled for the given context.
func (m *MemoryProvider) IsEnabled(ctx context.Context, flagName string) (bool, error) {
	m.mu.RLock()
	flag, exists := m.flags[flagName]
	m.mu.RUnlock()

	if !exists {
		return false, ErrFlagNotFound
	}

	// A globally disabled flag short-circuits strategy evaluation.
	if !flag.Enabled {
		return false, nil
	}

	if flag.Strategy == nil {
		return flag.Enabled, nil
	}

	return flag.Strategy.Evaluate(ctx)
}

// GetFlag retrieves a flag by name.
func (m *MemoryProvider) GetFlag(ctx context.Context, flagName string) (*Flag, error) {
	m.mu.RLock()
	flag, exists := m.flags[flagName]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrFlagNotFound
	}

	// Return a copy to prevent external modification.
	flagCopy := *flag
	return &flagCopy, nil
}
