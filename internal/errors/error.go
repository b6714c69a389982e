// Package errors provides sentinel errors for product inventory operations.
package errors

import "errors"

// ErrProductNotFound is returned when no product matches the lookup key.
var ErrProductNotFound = errors.New("product not found")

// ErrProductExists is returned when a product with the same name is already stored.
var ErrProductExists = errors.New("product already exists")
