package rooms

import (
	"context"

	roomsRepo "yalasafari/database/repository/rooms"
	"yalasafari/models"
	"yalasafari/services/notification"
)

// RoomRequest creates or updates a catalogue entry.
type RoomRequest struct {
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	RoomType     models.RoomType         `json:"roomType"`
	Capacity     models.RoomCapacity     `json:"capacity"`
	Pricing      models.RoomPricing      `json:"pricing"`
	Amenities    []string                `json:"amenities"`
	Images       []models.ImageRef       `json:"images"`
	Availability models.RoomAvailability `json:"availability"`
	Policies     models.RoomPolicies     `json:"policies"`
	IsActive     *bool                   `json:"isActive"`
}

// BookRequest submits a stay request for a room.
type BookRequest struct {
	RoomID          string                   `json:"roomId"`
	GuestName       string                   `json:"guestName"`
	GuestEmail      string                   `json:"guestEmail"`
	GuestPhone      string                   `json:"guestPhone"`
	CheckIn         string                   `json:"checkIn"`
	CheckOut        string                   `json:"checkOut"`
	Guests          models.RoomBookingGuests `json:"guests"`
	SpecialRequests string                   `json:"specialRequests"`
}

// Service manages the room catalogue and its bookings.
type Service interface {
	CreateRoom(ctx context.Context, req RoomRequest) (*models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context, activeOnly bool) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id string, req RoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	Book(ctx context.Context, req BookRequest) (*models.RoomBooking, error)
	GetBooking(ctx context.Context, id string) (*models.RoomBooking, error)
	ListBookings(ctx context.Context, filter roomsRepo.BookingFilter) ([]models.RoomBooking, error)
	SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.RoomBooking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// DefaultRoomService wires the repositories and the mail queue.
type DefaultRoomService struct {
	Rooms        roomsRepo.RoomRepository
	Bookings     roomsRepo.BookingRepository
	Notifier     notification.Notifier
	NewReference func() string
}

var _ Service = (*DefaultRoomService)(nil)

func NewRoomService(rooms roomsRepo.RoomRepository, bookings roomsRepo.BookingRepository, notifier notification.Notifier) *DefaultRoomService {
	return &DefaultRoomService{Rooms: rooms, Bookings: bookings, Notifier: notifier}
}
