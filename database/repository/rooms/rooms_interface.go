package roomsRepo

import (
	"context"
	"errors"
	"time"

	"yalasafari/models"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("room booking not found")
)

// BookingFilter narrows room booking listings.
type BookingFilter struct {
	Status models.BookingStatus
	RoomID string
	From   time.Time
	To     time.Time
}

// RoomRepository persists the room catalogue.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context, activeOnly bool) ([]models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository persists room bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *models.RoomBooking) error
	GetByID(ctx context.Context, id string) (*models.RoomBooking, error)
	GetByReference(ctx context.Context, ref string) (*models.RoomBooking, error)
	List(ctx context.Context, filter BookingFilter) ([]models.RoomBooking, error)
	Update(ctx context.Context, b *models.RoomBooking) error
	Delete(ctx context.Context, id string) error
}
