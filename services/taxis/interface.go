package taxis

import (
	"context"

	taxisRepo "yalasafari/database/repository/taxis"
	"yalasafari/models"
	"yalasafari/services/notification"
)

// TaxiRequest creates or updates a fleet vehicle.
type TaxiRequest struct {
	VehicleType models.VehicleType  `json:"vehicleType"`
	VehicleName string              `json:"vehicleName"`
	Description string              `json:"description"`
	Capacity    models.TaxiCapacity `json:"capacity"`
	Pricing     models.TaxiPricing  `json:"pricing"`
	Features    []string            `json:"features"`
	Images      []models.ImageRef   `json:"images"`
	IsActive    *bool               `json:"isActive"`
}

// BookRequest submits a transfer request.
type BookRequest struct {
	TaxiID          string          `json:"taxiId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	TripType        models.TripType `json:"tripType"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	PickupTime      string          `json:"pickupTime"`
	Passengers      int             `json:"passengers"`
	DistanceKm      float64         `json:"distanceKm"`
}

// Service manages the fleet and taxi bookings.
type Service interface {
	CreateTaxi(ctx context.Context, req TaxiRequest) (*models.Taxi, error)
	GetTaxi(ctx context.Context, id string) (*models.Taxi, error)
	ListTaxis(ctx context.Context, activeOnly bool) ([]models.Taxi, error)
	UpdateTaxi(ctx context.Context, id string, req TaxiRequest) (*models.Taxi, error)
	DeleteTaxi(ctx context.Context, id string) error

	EstimateFare(ctx context.Context, taxiID string, trip models.TripType, distanceKm float64) (models.TaxiFare, error)
	Book(ctx context.Context, req BookRequest) (*models.TaxiBooking, error)
	GetBooking(ctx context.Context, id string) (*models.TaxiBooking, error)
	ListBookings(ctx context.Context, filter taxisRepo.BookingFilter) ([]models.TaxiBooking, error)
	SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.TaxiBooking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// DefaultTaxiService wires the repositories and the mail queue.
type DefaultTaxiService struct {
	Taxis        taxisRepo.TaxiRepository
	Bookings     taxisRepo.BookingRepository
	Notifier     notification.Notifier
	NewReference func() string
}

var _ Service = (*DefaultTaxiService)(nil)

func NewTaxiService(taxis taxisRepo.TaxiRepository, bookings taxisRepo.BookingRepository, notifier notification.Notifier) *DefaultTaxiService {
	return &DefaultTaxiService{Taxis: taxis, Bookings: bookings, Notifier: notifier}
}
