package repository

import (
	"context"

	"github.com/dmoura/pastelaria/internal/domain/model"
)

// ReviewRepository describes persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	// List returns all reviews, newest first.
	List(ctx context.Context) ([]model.Review, error)
}
