package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/server/http/dto"
)

// ReviewHandler manages review-related endpoints.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), model.ReviewDraft{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidRating) {
			abortWithDetail(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(review))
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.Reviews(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, toReviewResponse(&r))
	}
	c.JSON(http.StatusOK, response)
}

func toReviewResponse(review *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           review.ID,
		CustomerName: review.CustomerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
