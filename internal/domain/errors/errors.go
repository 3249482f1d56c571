package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidRating = errors.New("rating out of range")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrInvalidItem   = errors.New("invalid order item")
)
