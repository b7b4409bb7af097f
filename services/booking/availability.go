package booking

import (
	"context"
	"time"

	"yalasafari/models"
)

// CheckAvailability reports whether a calendar date is free. A date is
// taken when a pending or confirmed booking already holds it; the
// returned conflict carries no customer details.
//
// This check is advisory for UI display. The authoritative guard is the
// storage-level unique index enforced at insert time, which closes the
// race between two concurrent submissions that both saw "available".
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date time.Time) (Availability, error) {
	date = models.NormalizeDate(date)
	result := Availability{Date: date.Format(dateLayout)}

	existing, err := s.Repo.FindActiveByDate(ctx, date)
	if err != nil {
		return result, err
	}
	if existing == nil {
		result.Available = true
		return result, nil
	}

	result.Conflict = &models.BookingConflict{
		Reference: existing.Reference,
		Status:    existing.Status,
		TimeSlot:  existing.TimeSlot,
	}
	return result, nil
}

// BookedDates lists the dates in [from, to] that carry an active
// booking, formatted YYYY-MM-DD for calendar rendering.
func (s *DefaultBookingService) BookedDates(ctx context.Context, from, to time.Time) ([]string, error) {
	dates, err := s.Repo.ActiveDatesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format(dateLayout))
	}
	return formatted, nil
}
