package usecase

import (
	"context"
	"time"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: func() time.Time { return time.Now().UTC() }}
}

// Create validates the draft, assigns id and timestamps, and persists the
// order with the initial Pendente status. The client-supplied total is
// stored as given.
func (u *OrderUseCase) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if len(draft.Items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 || item.FlavorName == "" {
			return nil, domainErrors.ErrInvalidItem
		}
	}

	now := u.now()
	order := &model.Order{
		ID:            model.NewID(),
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		Items:         draft.Items,
		TotalAmount:   draft.TotalAmount,
		Status:        model.OrderStatusPendente,
		Notes:         draft.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// GetByID returns the order with the given id.
func (u *OrderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus sets a new lifecycle status. Any of the four values may
// replace any other; only enum membership is checked.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, id, status, u.now())
}
