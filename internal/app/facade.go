package app

import (
	"context"

	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/usecase"
)

// PastelariaFacade aggregates the catalog, order, and review use cases
// behind the surface consumed by HTTP handlers.
type PastelariaFacade struct {
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	reviews *usecase.ReviewUseCase
}

func NewPastelariaFacade(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, reviews *usecase.ReviewUseCase) *PastelariaFacade {
	return &PastelariaFacade{catalog: catalog, orders: orders, reviews: reviews}
}

func (f *PastelariaFacade) Flavors(ctx context.Context) ([]model.Flavor, error) {
	return f.catalog.List(ctx)
}

func (f *PastelariaFacade) CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, draft)
}

func (f *PastelariaFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *PastelariaFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *PastelariaFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *PastelariaFacade) CreateReview(ctx context.Context, draft model.ReviewDraft) (*model.Review, error) {
	return f.reviews.Create(ctx, draft)
}

func (f *PastelariaFacade) Reviews(ctx context.Context) ([]model.Review, error) {
	return f.reviews.List(ctx)
}
