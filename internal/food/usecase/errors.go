package usecase

import "errors"

// Sentinel errors for listing operations. Delivery maps these to HTTP
// statuses: invalid id / invalid input -> 400, not found -> 404, everything
// else -> 500.
var (
	ErrInvalidID    = errors.New("invalid id format")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("food not found")
)
