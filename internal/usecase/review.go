package usecase

import (
	"context"
	"time"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/domain/repository"
)

// ReviewUseCase encapsulates review submission and listing.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	now     func() time.Time
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, now: func() time.Time { return time.Now().UTC() }}
}

// Create validates the rating bounds and persists the review.
func (u *ReviewUseCase) Create(ctx context.Context, draft model.ReviewDraft) (*model.Review, error) {
	if draft.Rating < model.MinRating || draft.Rating > model.MaxRating {
		return nil, domainErrors.ErrInvalidRating
	}

	review := &model.Review{
		ID:           model.NewID(),
		CustomerName: draft.CustomerName,
		Rating:       draft.Rating,
		Comment:      draft.Comment,
		CreatedAt:    u.now(),
	}

	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// List returns all reviews, newest first.
func (u *ReviewUseCase) List(ctx context.Context) ([]model.Review, error) {
	return u.reviews.List(ctx)
}
