package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrEshboboyev/api-versioning/internal/catalog"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newProduct(name string) catalog.Product {
	return catalog.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      9.99,
		Currency:   catalog.DefaultCurrency,
		InStock:    true,
		Quantity:   5,
		Category:   "Tools",
		Department: "Hardware",
		Tags:       []string{"a", "b"},
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		p := newProduct("Widget")
		require.NoError(t, store.Create(ctx, p))

		got, err := store.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		first := newProduct("First")
		second := newProduct("Second")
		require.NoError(t, store.Create(ctx, first))
		require.NoError(t, store.Create(ctx, second))

		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "First", all[0].Name)
		assert.Equal(t, "Second", all[1].Name)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		p := newProduct("Widget")
		require.NoError(t, store.Create(ctx, p))
		require.NoError(t, store.Delete(ctx, p.ID))

		_, err := store.Get(ctx, p.ID)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
		assert.ErrorIs(t, store.Delete(ctx, p.ID), catalog.ErrProductNotFound)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		p := newProduct("Widget")
		require.NoError(t, store.Create(ctx, p))

		got, err := store.Get(ctx, p.ID)
		require.NoError(t, err)
		got.Tags[0] = "mutated"

		again, err := store.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, again.Tags)
	})
}

func TestMemoryStoreUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial patch preserves untouched fields", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		p := newProduct("Widget")
		require.NoError(t, store.Create(ctx, p))

		updated, err := store.Update(ctx, p.ID, catalog.Patch{Price: floatPtr(5.00)})
		require.NoError(t, err)

		assert.Equal(t, 5.00, updated.Price)
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, []string{"a", "b"}, updated.Tags)
		assert.Equal(t, "Tools", updated.Category)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("multiple fields", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		p := newProduct("Widget")
		require.NoError(t, store.Create(ctx, p))

		updated, err := store.Update(ctx, p.ID, catalog.Patch{
			Name:            strPtr("Gadget"),
			DiscountedPrice: floatPtr(7.50),
			Tags:            []string{"x"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Gadget", updated.Name)
		require.NotNil(t, updated.DiscountedPrice)
		assert.Equal(t, 7.50, *updated.DiscountedPrice)
		assert.Equal(t, []string{"x"}, updated.Tags)
	})

	t.Run("missing product", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		_, err := store.Update(ctx, uuid.New(), catalog.Patch{Name: strPtr("x")})
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}

func TestMemoryStoreIncrementViews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := catalog.NewMemoryStore()
	p := newProduct("Widget")
	require.NoError(t, store.Create(ctx, p))

	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, store.IncrementViews(ctx, p.ID))
	}

	got, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Views)

	assert.ErrorIs(t, store.IncrementViews(ctx, uuid.New()), catalog.ErrProductNotFound)
}

func TestSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("seeds empty store", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		require.NoError(t, catalog.Seed(ctx, store, log))

		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Product A", all[0].Name)
		assert.Equal(t, 10.99, all[0].Price)
		assert.Equal(t, 100, all[0].Quantity)
		assert.Equal(t, "Product B", all[1].Name)
		assert.True(t, all[1].IsDiscounted)
	})

	t.Run("idempotent on non-empty store", func(t *testing.T) {
		t.Parallel()
		store := catalog.NewMemoryStore()
		require.NoError(t, catalog.Seed(ctx, store, log))
		require.NoError(t, catalog.Seed(ctx, store, log))

		all, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
