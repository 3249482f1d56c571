package usecase

import (
	"context"

	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/domain/repository"
)

// CatalogUseCase serves the flavor catalog, seeding it on first read.
type CatalogUseCase struct {
	flavors repository.FlavorRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(flavors repository.FlavorRepository) *CatalogUseCase {
	return &CatalogUseCase{flavors: flavors}
}

// List returns the full catalog. An empty collection is seeded with the
// fixed ten-flavor catalog first; the repository guard keeps concurrent
// first reads from inserting it twice.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Flavor, error) {
	flavors, err := u.flavors.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(flavors) > 0 {
		return flavors, nil
	}

	seed := model.SeedFlavors()
	for i := range seed {
		seed[i].ID = model.NewID()
		seed[i].Position = i
	}
	if err := u.flavors.Seed(ctx, seed); err != nil {
		return nil, err
	}

	// Re-read so a racing seeder's catalog is observed instead of ours.
	return u.flavors.List(ctx)
}
