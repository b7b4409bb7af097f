package bookingRepo

import (
	"context"
	"errors"
	"time"

	"yalasafari/models"
)

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// ErrDateTaken is returned when an insert collides with the unique
// active-booking-per-date index. This is the storage-level guarantee
// that two concurrent submissions for the same date cannot both land.
var ErrDateTaken = errors.New("an active booking already exists for this date")

// ListFilter narrows booking listings.
type ListFilter struct {
	Status models.BookingStatus
	From   time.Time
	To     time.Time
	Limit  int64
}

// Stats aggregates the booking figures shown on the admin dashboard.
// Revenue counts completed bookings only.
type Stats struct {
	TotalBookings    int64
	PendingBookings  int64
	CompletedRevenue float64
	LocalVisitors    int64
	ForeignVisitors  int64
}

// Repository persists safari bookings.
type Repository interface {
	Create(ctx context.Context, b *models.SafariBooking) error
	GetByID(ctx context.Context, id string) (*models.SafariBooking, error)
	GetByReference(ctx context.Context, ref string) (*models.SafariBooking, error)
	List(ctx context.Context, filter ListFilter) ([]models.SafariBooking, error)
	Update(ctx context.Context, b *models.SafariBooking) error
	Delete(ctx context.Context, id string) error

	// FindActiveByDate returns the pending or confirmed booking occupying
	// the given calendar date, or nil when the date is free.
	FindActiveByDate(ctx context.Context, date time.Time) (*models.SafariBooking, error)
	// ActiveDatesInRange returns the distinct dates carrying an active
	// booking within [from, to].
	ActiveDatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error)
	// Stats computes the dashboard counters and the completed-booking
	// revenue total.
	Stats(ctx context.Context) (Stats, error)
}
