package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("name cannot be empty")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrMissingID       = errors.New("product id is required")
)
