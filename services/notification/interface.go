package notification

import (
	"context"

	"yalasafari/models"
)

// Notifier dispatches transactional emails for booking events. Dispatch
// is best-effort: callers treat failures as log-only and never roll back
// the booking that triggered them.
type Notifier interface {
	// SafariBookingReceived alerts the back office and acknowledges the
	// customer after a new submission.
	SafariBookingReceived(ctx context.Context, b *models.SafariBooking) error
	// SafariBookingConfirmed tells the customer their booking was approved.
	SafariBookingConfirmed(ctx context.Context, b *models.SafariBooking) error
	// SafariBookingRejected tells the customer their booking was declined,
	// carrying the admin's reason.
	SafariBookingRejected(ctx context.Context, b *models.SafariBooking, reason string) error

	RoomBookingReceived(ctx context.Context, b *models.RoomBooking, room *models.Room) error
	TaxiBookingReceived(ctx context.Context, b *models.TaxiBooking, taxi *models.Taxi) error

	// ContactReceived alerts the back office about a contact form enquiry
	// and thanks the sender.
	ContactReceived(ctx context.Context, m *models.ContactMessage) error
}
