package contactsRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

var ErrNotFound = errors.New("contact message not found")

// ListFilter narrows contact inbox listings.
type ListFilter struct {
	UnreadOnly bool
	Limit      int64
	Skip       int64
}

// Repository persists contact form submissions.
type Repository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	List(ctx context.Context, filter ListFilter) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
