// Package service provides the implementation of product inventory business logic.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/inventory/internal/store"
)

// ProductService defines the methods for managing product inventory records.
// It abstracts the underlying data access.
type ProductService interface {
	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns all products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the inventory.
	// Returns ErrProductExists if the name is already taken.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites cost and stock of an existing product. Name and ID never change.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Service implements ProductService on top of a store.ProductStore.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Cost and Stock are pointers so that an explicit zero passes the required check.
type ProductCreateDto struct {
	Name  string `json:"name"  validate:"required"`
	Cost  *int64 `json:"cost"  validate:"required"`
	Stock *int64 `json:"stock" validate:"required"`
}

// ProductUpdateDto represents the data transfer object for updating a product.
// Name is accepted for compatibility with clients that send the full record and is ignored.
type ProductUpdateDto struct {
	Name  string `json:"name,omitempty"`
	Cost  *int64 `json:"cost"  validate:"required"`
	Stock *int64 `json:"stock" validate:"required"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cost  int64  `json:"cost"`
	Stock int64  `json:"stock"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// Create creates a new product and returns it with the store-assigned ID.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, deref(product.Cost), deref(product.Stock))
	if err != nil {
		return nil, fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}

	return toDto(p), nil
}

// Update overwrites cost and stock and returns the product as persisted.
func (s *Service) Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, deref(product.Cost), deref(product.Stock))
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// Ping checks the store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Cost:  product.Cost,
		Stock: product.Stock,
	}
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
