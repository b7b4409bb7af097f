package booking

import (
	"context"
	"errors"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
	"yalasafari/services/notification"

	"github.com/google/uuid"
)

// Create validates a submission, prices it against the active package,
// and persists it in pending status. Prices are always computed server
// side; client-supplied figures are ignored. On success an admin alert
// and a customer acknowledgement are dispatched fire-and-forget.
func (s *DefaultBookingService) Create(ctx context.Context, req CreateRequest) (*models.SafariBooking, error) {
	date, err := validateCreate(req)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check for a friendly conflict message. The unique
	// index on active bookings is what actually serializes concurrent
	// submissions for the same date.
	avail, err := s.CheckAvailability(ctx, date)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, newError(CodeConflict, "date %s is already booked", avail.Date)
	}

	pkg, err := s.Packages.ActivePackage(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := CalculateQuote(QuoteRequest{
		VisitorType: req.VisitorType,
		People:      req.People,
		TimeSlot:    req.TimeSlot,
		JeepGrade:   req.JeepGrade,
		GuideOption: req.GuideOption,
		Meals:       req.Meals,
	}, pkg)
	if err != nil {
		return nil, err
	}

	b := &models.SafariBooking{
		ID:            uuid.NewString(),
		Reference:     s.reference(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VisitorType:   req.VisitorType,
		Date:          date,
		TimeSlot:      req.TimeSlot,
		JeepGrade:     req.JeepGrade,
		GuideOption:   req.GuideOption,
		People:        req.People,
		Meals:         req.Meals,
		Prices:        prices,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrDateTaken) {
			return nil, newError(CodeConflict, "date %s is already booked", avail.Date)
		}
		return nil, err
	}

	s.notify("safari booking received", func(n notification.Notifier) error {
		return n.SafariBookingReceived(context.Background(), b)
	})
	return b, nil
}

// Approve moves a pending booking to confirmed and notifies the customer.
func (s *DefaultBookingService) Approve(ctx context.Context, id string) (*models.SafariBooking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingPending {
		return nil, newError(CodeConflict, "cannot approve booking in %q status", b.Status)
	}

	b.Status = models.BookingConfirmed
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notify("safari booking confirmed", func(n notification.Notifier) error {
		return n.SafariBookingConfirmed(context.Background(), b)
	})
	return b, nil
}

// Reject moves a pending booking to cancelled, storing the admin's
// reason verbatim and forwarding it to the customer.
func (s *DefaultBookingService) Reject(ctx context.Context, id, reason string) (*models.SafariBooking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingPending {
		return nil, newError(CodeConflict, "cannot reject booking in %q status", b.Status)
	}

	b.Status = models.BookingCancelled
	if reason != "" {
		b.AdminNotes = reason
	}
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notify("safari booking rejected", func(n notification.Notifier) error {
		return n.SafariBookingRejected(context.Background(), b, reason)
	})
	return b, nil
}

// Complete marks a confirmed booking as completed after the safari ran.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.SafariBooking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingConfirmed {
		return nil, newError(CodeConflict, "cannot complete booking in %q status", b.Status)
	}

	b.Status = models.BookingCompleted
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetPaymentStatus corrects the payment state. It is independent of the
// booking lifecycle and is allowed in any status.
func (s *DefaultBookingService) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.SafariBooking, error) {
	if !status.Valid() {
		return nil, newError(CodeValidation, "unknown payment status %q", status)
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	b.PaymentStatus = status
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete hard-deletes a booking. Confirmed bookings are protected: an
// admin must cancel first or pass force to override.
func (s *DefaultBookingService) Delete(ctx context.Context, id string, force bool) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == models.BookingConfirmed && !force {
		return newError(CodeForbidden, "booking %s is confirmed; cancel it first or force the delete", id)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return newError(CodeNotFound, "booking %s not found", id)
		}
		return err
	}
	return nil
}
