package galleryRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

var ErrNotFound = errors.New("gallery image not found")

// Repository persists gallery images.
type Repository interface {
	Create(ctx context.Context, img *models.GalleryImage) error
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	List(ctx context.Context, category string, activeOnly bool) ([]models.GalleryImage, error)
	Update(ctx context.Context, img *models.GalleryImage) error
	Delete(ctx context.Context, id string) error
}
