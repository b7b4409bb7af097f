package dashboard

import (
	"context"

	"yalasafari/models"
)

// Overview is the admin dashboard payload: current figures plus the
// latest bookings for the activity feed.
type Overview struct {
	Stats          models.DashboardStat   `json:"stats"`
	RecentBookings []models.SafariBooking `json:"recentBookings"`
}

// Service computes the admin overview.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}
