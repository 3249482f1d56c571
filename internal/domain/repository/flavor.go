package repository

import (
	"context"

	"github.com/dmoura/pastelaria/internal/domain/model"
)

// FlavorRepository describes persistence operations for the catalog.
type FlavorRepository interface {
	// List returns all flavors in catalog order.
	List(ctx context.Context) ([]model.Flavor, error)
	// Seed inserts the catalog in one transaction. Flavors whose name is
	// already present are skipped, so concurrent seeds cannot duplicate
	// the catalog.
	Seed(ctx context.Context, flavors []model.Flavor) error
}
