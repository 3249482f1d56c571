package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the delivery lifecycle stage of an order.
type OrderStatus string

const (
	OrderStatusPendente   OrderStatus = "Pendente"
	OrderStatusPreparando OrderStatus = "Preparando"
	OrderStatusPronto     OrderStatus = "Pronto"
	OrderStatusEntregue   OrderStatus = "Entregue"
)

// Valid reports whether the status is one of the four lifecycle values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendente, OrderStatusPreparando, OrderStatusPronto, OrderStatusEntregue:
		return true
	}
	return false
}

// OrderItem is one line of an order. FlavorName is an informational copy,
// not a reference into the catalog.
type OrderItem struct {
	FlavorName string
	Quantity   int
	Price      float64
}

// Order describes a customer order tracked through the delivery lifecycle.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Items         []OrderItem
	TotalAmount   float64
	Status        OrderStatus
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderDraft carries client-supplied fields of a new order. The total is
// trusted as given, it is not recomputed from the items.
type OrderDraft struct {
	CustomerName  string
	CustomerPhone string
	Items         []OrderItem
	TotalAmount   float64
	Notes         *string
}

// NewID generates a fresh globally unique record identifier.
func NewID() string {
	return uuid.NewString()
}
