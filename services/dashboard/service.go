package dashboard

import (
	"context"

	bookingRepo "yalasafari/database/repository/booking"
	statsRepo "yalasafari/database/repository/stats"
	"yalasafari/models"
	"yalasafari/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDashboardService computes overview figures from the booking
// collection and records a snapshot of each computation.
type DefaultDashboardService struct {
	Bookings  bookingRepo.Repository
	Snapshots statsRepo.Repository
}

var _ Service = (*DefaultDashboardService)(nil)

func NewDashboardService(bookings bookingRepo.Repository, snapshots statsRepo.Repository) *DefaultDashboardService {
	return &DefaultDashboardService{Bookings: bookings, Snapshots: snapshots}
}

// recentBookingCount limits the activity feed on the overview.
const recentBookingCount = 10

// Overview computes the current figures, persists them as a snapshot,
// and returns them with the latest bookings. A failed snapshot write is
// logged but does not fail the overview.
func (s *DefaultDashboardService) Overview(ctx context.Context) (*Overview, error) {
	stats, err := s.Bookings.Stats(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := models.DashboardStat{
		ID:              uuid.NewString(),
		TotalBookings:   stats.TotalBookings,
		Revenue:         stats.CompletedRevenue,
		PendingBookings: stats.PendingBookings,
		WebsiteVisitors: stats.LocalVisitors + stats.ForeignVisitors,
		LocalVisitors:   stats.LocalVisitors,
		ForeignVisitors: stats.ForeignVisitors,
	}
	if err := s.Snapshots.Create(ctx, &snapshot); err != nil {
		utils.GetLogger().Warn("dashboard: failed to persist snapshot", zap.Error(err))
	}

	recent, err := s.Bookings.List(ctx, bookingRepo.ListFilter{Limit: recentBookingCount})
	if err != nil {
		return nil, err
	}

	return &Overview{Stats: snapshot, RecentBookings: recent}, nil
}
