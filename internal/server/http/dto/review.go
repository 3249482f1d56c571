package dto

import "time"

// ReviewCreateRequest describes the review submission payload.
type ReviewCreateRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment      string `json:"comment"`
}

// ReviewResponse describes a persisted review.
type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
