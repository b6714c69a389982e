// Package store provides storage backends for product inventory records.
package store

import (
	"context"
)

// Product represents a product inventory record as persisted.
type Product struct {
	ID    int64
	Name  string
	Cost  int64 // minimal currency units
	Stock int64
}

// ProductStore is an interface for product storage operations.
// Every method executes a single statement that is either fully applied or fully rejected.
type ProductStore interface {
	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns every stored product.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product; the store assigns the ID.
	// Returns ErrProductExists if the name is already taken.
	Create(ctx context.Context, name string, cost, stock int64) (*Product, error)

	// Update overwrites cost and stock and returns the product as stored afterwards.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, cost, stock int64) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
