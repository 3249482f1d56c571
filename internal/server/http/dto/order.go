package dto

import "time"

// OrderItemPayload is one order line, shared by requests and responses.
type OrderItemPayload struct {
	FlavorName string  `json:"flavor_name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"gte=0"`
}

// OrderCreateRequest describes the order placement payload.
type OrderCreateRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	Items         []OrderItemPayload `json:"items" binding:"required,min=1,dive"`
	TotalAmount   float64            `json:"total_amount" binding:"gte=0"`
	Notes         *string            `json:"notes"`
}

// OrderStatusUpdateRequest carries the new lifecycle status.
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse describes a persisted order.
type OrderResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderItemPayload `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	Status        string             `json:"status"`
	Notes         *string            `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
