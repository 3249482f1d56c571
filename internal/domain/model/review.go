package model

import "time"

// Rating bounds accepted for reviews, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer-submitted rating with a comment. Reviews are
// immutable once created.
type Review struct {
	ID           string
	CustomerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

// ReviewDraft carries client-supplied fields of a new review.
type ReviewDraft struct {
	CustomerName string
	Rating       int
	Comment      string
}
