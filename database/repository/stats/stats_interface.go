package statsRepo

import (
	"context"

	"yalasafari/models"
)

// Repository persists dashboard stat snapshots.
type Repository interface {
	Create(ctx context.Context, s *models.DashboardStat) error
	// Recent returns the latest snapshots, newest first.
	Recent(ctx context.Context, limit int64) ([]models.DashboardStat, error)
}
