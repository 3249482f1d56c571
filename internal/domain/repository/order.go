package repository

import (
	"context"
	"time"

	"github.com/dmoura/pastelaria/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// UpdateStatus sets the status and refreshes updated_at, returning the
	// full updated record.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) (*model.Order, error)
}
