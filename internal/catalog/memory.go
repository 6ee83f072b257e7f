package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation. It is the default
// backend and mirrors the behavior expected of the real database: stable
// list order (insertion order) and atomic per-record writes.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
	order    []uuid.UUID
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]Product),
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, cloneProduct(s.products[id]))
	}
	return result, nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (s *MemoryStore) Create(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}

	patch.Apply(&p)
	s.products[id] = cloneProduct(p)
	return cloneProduct(p), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

func (s *MemoryStore) IncrementViews(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Views++
	s.products[id] = p
	return nil
}

// cloneProduct copies the record including its tag slice, so callers can
// never mutate stored state through a returned value.
func cloneProduct(p Product) Product {
	if p.Tags != nil {
		p.Tags = slices.Clone(p.Tags)
	}
	if p.DiscountedPrice != nil {
		v := *p.DiscountedPrice
		p.DiscountedPrice = &v
	}
	return p
}
