package booking

import (
	"context"
	"time"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
	"yalasafari/services/notification"
)

// PackageSource supplies the authoritative pricing package. Implemented
// by the pricing service; tests inject fixed fixtures.
type PackageSource interface {
	ActivePackage(ctx context.Context) (*models.Package, error)
}

// CreateRequest is a customer-facing booking submission.
type CreateRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Date        string               `json:"date"` // YYYY-MM-DD
	VisitorType models.VisitorType   `json:"visitorType"`
	TimeSlot    models.TimeSlot      `json:"timeSlot"`
	JeepGrade   models.JeepGrade     `json:"jeepGrade"`
	GuideOption models.GuideOption   `json:"guideOption"`
	People      int                  `json:"people"`
	Meals       models.MealSelection `json:"meals"`
}

// UpdateRequest carries the fields an admin may edit after creation.
// Safari selections are immutable once priced; a change means reject
// and rebook.
type UpdateRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	AdminNotes    string `json:"adminNotes"`
}

// Availability is the result of a calendar date check.
type Availability struct {
	Date      string                  `json:"date"`
	Available bool                    `json:"available"`
	Conflict  *models.BookingConflict `json:"conflict,omitempty"`
}

// Service is the safari booking engine.
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (models.PriceBreakdown, error)
	CheckAvailability(ctx context.Context, date time.Time) (Availability, error)
	BookedDates(ctx context.Context, from, to time.Time) ([]string, error)

	Create(ctx context.Context, req CreateRequest) (*models.SafariBooking, error)
	Get(ctx context.Context, id string) (*models.SafariBooking, error)
	List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.SafariBooking, error)
	UpdateContact(ctx context.Context, id string, req UpdateRequest) (*models.SafariBooking, error)

	Approve(ctx context.Context, id string) (*models.SafariBooking, error)
	Reject(ctx context.Context, id, reason string) (*models.SafariBooking, error)
	Complete(ctx context.Context, id string) (*models.SafariBooking, error)
	SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.SafariBooking, error)
	Delete(ctx context.Context, id string, force bool) error
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Repo     bookingRepo.Repository
	Packages PackageSource
	Notifier notification.Notifier
	// NewReference generates external booking references; injected for
	// deterministic tests.
	NewReference func() string
}
