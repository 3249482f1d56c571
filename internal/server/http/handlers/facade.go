package handlers

import (
	"context"

	"github.com/dmoura/pastelaria/internal/domain/model"
)

// CatalogFacade exposes the flavor catalog.
type CatalogFacade interface {
	Flavors(ctx context.Context) ([]model.Flavor, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// ReviewFacade encapsulates review operations exposed via HTTP.
type ReviewFacade interface {
	CreateReview(ctx context.Context, draft model.ReviewDraft) (*model.Review, error)
	Reviews(ctx context.Context) ([]model.Review, error)
}

// PastelariaFacade aggregates the full set of operations used across handlers.
type PastelariaFacade interface {
	CatalogFacade
	OrderFacade
	ReviewFacade
}
