package pricingRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

// ErrNotFound is returned when no package matches the lookup.
var ErrNotFound = errors.New("package not found")

// Repository persists pricing packages.
type Repository interface {
	Create(ctx context.Context, p *models.Package) error
	GetByID(ctx context.Context, id string) (*models.Package, error)
	// FindActive returns the most recently updated active package, or
	// nil when none exists.
	FindActive(ctx context.Context) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	Update(ctx context.Context, p *models.Package) error
	Count(ctx context.Context) (int64, error)
}
