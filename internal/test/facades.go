package test

import (
	"context"
	"time"

	"github.com/dmoura/pastelaria/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	FlavorsFn func(context.Context) ([]model.Flavor, error)
}

// Flavors delegates to the provided function or returns a small catalog.
func (s CatalogFacadeStub) Flavors(ctx context.Context) ([]model.Flavor, error) {
	if s.FlavorsFn != nil {
		return s.FlavorsFn(ctx)
	}
	return []model.Flavor{{ID: "f-1", Name: "Misto", Price: 8.0, Description: "Queijo e presunto"}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, model.OrderDraft) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	OrderFn  func(context.Context, string) (*model.Order, error)
	UpdateFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

// CreateOrder delegates to the provided function or echoes the draft back
// as a freshly stamped order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	now := time.Now().UTC()
	return &model.Order{
		ID:            model.NewID(),
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		Items:         draft.Items,
		TotalAmount:   draft.TotalAmount,
		Status:        model.OrderStatusPendente,
		Notes:         draft.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "o-1", Status: model.OrderStatusPendente}}, nil
}

// Order returns a single order by id.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPendente}, nil
}

// UpdateOrderStatus delegates or returns an order with the requested status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status, UpdatedAt: time.Now().UTC()}, nil
}

// ReviewFacadeStub provides controllable behaviour for review endpoints.
type ReviewFacadeStub struct {
	CreateFn  func(context.Context, model.ReviewDraft) (*model.Review, error)
	ReviewsFn func(context.Context) ([]model.Review, error)
}

// CreateReview delegates or echoes the draft back as a stamped review.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, draft model.ReviewDraft) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	return &model.Review{
		ID:           model.NewID(),
		CustomerName: draft.CustomerName,
		Rating:       draft.Rating,
		Comment:      draft.Comment,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Reviews returns predefined reviews.
func (s ReviewFacadeStub) Reviews(ctx context.Context) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx)
	}
	return []model.Review{{ID: "r-1", Rating: 5}}, nil
}

// PastelariaFacadeStub aggregates the per-service stubs.
type PastelariaFacadeStub struct {
	CatalogFacadeStub
	OrderFacadeStub
	ReviewFacadeStub
}
