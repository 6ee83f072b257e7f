package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is the not-found signal shared by all store operations
// that target a single record.
var ErrProductNotFound = errors.New("product not found")

// Store is the keyed record table holding canonical products.
//
// Writes are last-write-wins: there is no optimistic concurrency token, so
// two concurrent updates to the same id race. Each individual operation is
// atomic (a single critical section or SQL statement), so readers never see
// a half-applied patch.
type Store interface {
	// List returns all products in a stable order.
	List(ctx context.Context) ([]Product, error)

	// Get returns the product with the given id, or ErrProductNotFound.
	Get(ctx context.Context, id uuid.UUID) (Product, error)

	// Create inserts a new product record.
	Create(ctx context.Context, p Product) error

	// Update merges the patch onto the stored record and returns the result,
	// or ErrProductNotFound.
	Update(ctx context.Context, id uuid.UUID, patch Patch) (Product, error)

	// Delete removes the record, or returns ErrProductNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews adds exactly one recorded view, or returns
	// ErrProductNotFound.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
