package reviewsRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

var ErrNotFound = errors.New("review not found")

// ListFilter narrows review listings.
type ListFilter struct {
	Status        models.ReviewStatus
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int64
	Skip          int64
}

// Repository persists customer reviews.
type Repository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context, filter ListFilter) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	IncrementHelpful(ctx context.Context, id string) error
}
