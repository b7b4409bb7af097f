package taxisRepo

import (
	"context"
	"errors"
	"time"

	"yalasafari/models"
)

var (
	ErrTaxiNotFound    = errors.New("taxi not found")
	ErrBookingNotFound = errors.New("taxi booking not found")
)

// BookingFilter narrows taxi booking listings.
type BookingFilter struct {
	Status models.BookingStatus
	TaxiID string
	From   time.Time
	To     time.Time
}

// TaxiRepository persists the vehicle fleet.
type TaxiRepository interface {
	Create(ctx context.Context, taxi *models.Taxi) error
	GetByID(ctx context.Context, id string) (*models.Taxi, error)
	List(ctx context.Context, activeOnly bool) ([]models.Taxi, error)
	Update(ctx context.Context, taxi *models.Taxi) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository persists taxi bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *models.TaxiBooking) error
	GetByID(ctx context.Context, id string) (*models.TaxiBooking, error)
	List(ctx context.Context, filter BookingFilter) ([]models.TaxiBooking, error)
	Update(ctx context.Context, b *models.TaxiBooking) error
	Delete(ctx context.Context, id string) error
}
