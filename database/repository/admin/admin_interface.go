package adminRepo

import (
	"context"
	"errors"

	"yalasafari/models"
)

var ErrNotFound = errors.New("admin not found")

// Repository persists admin accounts.
type Repository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
}
