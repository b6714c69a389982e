package store

import (
	"context"
	"sort"
	"sync"

	"github.com/abgdnv/inventory/internal/errors"
)

// inMemory implements ProductStore using in-process maps.
// It enforces name uniqueness and never reuses IDs, mirroring the Postgres table.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]Product
	names    map[string]int64
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]Product),
		names:    make(map[string]int64),
		nextID:   1,
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by ID.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, name string, cost, stock int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.names[name]; exists {
		return nil, errors.ErrProductExists
	}
	product := Product{
		ID:    s.nextID,
		Name:  name,
		Cost:  cost,
		Stock: stock,
	}
	s.nextID++
	s.products[product.ID] = product
	s.names[name] = product.ID

	return &product, nil
}

// Update overwrites cost and stock of an existing product.
func (s *inMemory) Update(_ context.Context, id int64, cost, stock int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	p.Cost = cost
	p.Stock = stock
	s.products[id] = p
	return &p, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[id]
	if !exists {
		return errors.ErrProductNotFound
	}
	delete(s.products, id)
	delete(s.names, p.Name)
	return nil
}

// Ping always succeeds.
func (s *inMemory) Ping(_ context.Context) error {
	return nil
}
