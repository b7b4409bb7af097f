package booking

import (
	"context"
	"errors"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
	"yalasafari/services/notification"
	"yalasafari/utils"

	"go.uber.org/zap"
)

// notify hands an email dispatch to the notifier without blocking the
// request. Failures are logged and swallowed: booking state is already
// persisted and is never rolled back over a mail problem.
func (s *DefaultBookingService) notify(event string, fn func(notification.Notifier) error) {
	if s.Notifier == nil {
		return
	}
	go func() {
		if err := fn(s.Notifier); err != nil {
			utils.GetLogger().Warn("booking: notification dispatch failed",
				zap.String("event", event), zap.Error(err))
		}
	}()
}

func (s *DefaultBookingService) reference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return utils.NewBookingReference("YSF")
}

// Quote fetches the active pricing package and computes a price
// breakdown without persisting anything.
func (s *DefaultBookingService) Quote(ctx context.Context, req QuoteRequest) (models.PriceBreakdown, error) {
	pkg, err := s.Packages.ActivePackage(ctx)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	return CalculateQuote(req, pkg)
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.SafariBooking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "booking %s not found", id)
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.SafariBooking, error) {
	return s.Repo.List(ctx, filter)
}

// UpdateContact edits contact details and admin notes. Safari selections
// and prices are immutable after creation.
func (s *DefaultBookingService) UpdateContact(ctx context.Context, id string, req UpdateRequest) (*models.SafariBooking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != "" {
		b.CustomerName = req.CustomerName
	}
	if req.CustomerEmail != "" {
		b.CustomerEmail = req.CustomerEmail
	}
	if req.CustomerPhone != "" {
		b.CustomerPhone = req.CustomerPhone
	}
	if req.AdminNotes != "" {
		b.AdminNotes = req.AdminNotes
	}

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
