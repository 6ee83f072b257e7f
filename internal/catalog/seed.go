package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed populates an empty store with the starter catalog. A store that
// already holds products is left untouched, so restarts never duplicate data.
func Seed(ctx context.Context, store Store, log *slog.Logger) error {
	existing, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	products := []Product{
		{
			ID:          uuid.New(),
			Name:        "Product A",
			DisplayName: "Product A",
			Price:       10.99,
			Currency:    DefaultCurrency,
			InStock:     true,
			Quantity:    100,
		},
		{
			ID:           uuid.New(),
			Name:         "Product B",
			DisplayName:  "Product B",
			Price:        15.49,
			Currency:     DefaultCurrency,
			IsDiscounted: true,
			InStock:      true,
			Quantity:     200,
		},
	}

	for _, p := range products {
		if err := store.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	log.InfoContext(ctx, "seeded product catalog", slog.Int("count", len(products)))
	return nil
}
