package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
)

// FlavorRepositoryStub keeps the catalog in memory for tests.
type FlavorRepositoryStub struct {
	mu      sync.Mutex
	Flavors []model.Flavor
	Err     error
	Seeded  int
}

// List returns the stored catalog in position order.
func (s *FlavorRepositoryStub) List(ctx context.Context) ([]model.Flavor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Flavor, len(s.Flavors))
	copy(out, s.Flavors)
	return out, nil
}

// Seed stores the catalog, skipping names already present.
func (s *FlavorRepositoryStub) Seed(ctx context.Context, flavors []model.Flavor) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Seeded++
	known := make(map[string]struct{}, len(s.Flavors))
	for _, f := range s.Flavors {
		known[f.Name] = struct{}{}
	}
	for _, f := range flavors {
		if _, dup := known[f.Name]; dup {
			continue
		}
		s.Flavors = append(s.Flavors, f)
	}
	return nil
}

// OrderRepositoryStub keeps orders in memory for tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores the order keyed by id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

// List returns stored orders, newest first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetByID fetches the order or signals not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus rewrites the status and updated_at of a stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	out := *o
	return &out, nil
}

// ReviewRepositoryStub keeps reviews in memory for tests.
type ReviewRepositoryStub struct {
	mu      sync.Mutex
	Reviews []model.Review
	Err     error
}

// Create appends the review.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reviews = append(s.Reviews, *review)
	return nil
}

// List returns stored reviews, newest first.
func (s *ReviewRepositoryStub) List(ctx context.Context) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Review, len(s.Reviews))
	copy(out, s.Reviews)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
