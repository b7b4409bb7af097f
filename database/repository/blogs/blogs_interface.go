package blogsRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

var ErrNotFound = errors.New("blog post not found")

// Repository persists blog posts.
type Repository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, limit, skip int64) ([]models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}
