package taxis

import (
	"context"
	"errors"
	"strings"
	"time"

	taxisRepo "yalasafari/database/repository/taxis"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultTaxiService) CreateTaxi(ctx context.Context, req TaxiRequest) (*models.Taxi, error) {
	if strings.TrimSpace(req.VehicleName) == "" {
		return nil, booking.NewError(booking.CodeValidation, "missing required field %q", "vehicleName")
	}
	if !req.VehicleType.Valid() {
		return nil, booking.NewError(booking.CodeValidation, "unknown vehicle type %q", req.VehicleType)
	}
	if req.Pricing.BasePrice < 0 || req.Pricing.PricePerKm < 0 {
		return nil, booking.NewError(booking.CodeValidation, "fare rates must be non-negative")
	}

	now := time.Now().UTC()
	taxi := &models.Taxi{
		ID:          uuid.NewString(),
		VehicleType: req.VehicleType,
		VehicleName: req.VehicleName,
		Description: req.Description,
		Capacity:    req.Capacity,
		Pricing:     req.Pricing,
		Features:    req.Features,
		Images:      req.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if taxi.Pricing.Currency == "" {
		taxi.Pricing.Currency = "USD"
	}
	if req.IsActive != nil {
		taxi.IsActive = *req.IsActive
	}
	if err := s.Taxis.Create(ctx, taxi); err != nil {
		return nil, err
	}
	return taxi, nil
}

func (s *DefaultTaxiService) GetTaxi(ctx context.Context, id string) (*models.Taxi, error) {
	taxi, err := s.Taxis.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taxisRepo.ErrTaxiNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "taxi %s not found", id)
		}
		return nil, err
	}
	return taxi, nil
}

func (s *DefaultTaxiService) ListTaxis(ctx context.Context, activeOnly bool) ([]models.Taxi, error) {
	return s.Taxis.List(ctx, activeOnly)
}

func (s *DefaultTaxiService) UpdateTaxi(ctx context.Context, id string, req TaxiRequest) (*models.Taxi, error) {
	taxi, err := s.GetTaxi(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.VehicleName != "" {
		taxi.VehicleName = req.VehicleName
	}
	if req.VehicleType != "" {
		if !req.VehicleType.Valid() {
			return nil, booking.NewError(booking.CodeValidation, "unknown vehicle type %q", req.VehicleType)
		}
		taxi.VehicleType = req.VehicleType
	}
	if req.Description != "" {
		taxi.Description = req.Description
	}
	if req.Capacity.Passengers > 0 {
		taxi.Capacity = req.Capacity
	}
	if req.Pricing.BasePrice > 0 || req.Pricing.PricePerKm > 0 {
		taxi.Pricing = req.Pricing
		if taxi.Pricing.Currency == "" {
			taxi.Pricing.Currency = "USD"
		}
	}
	if req.Features != nil {
		taxi.Features = req.Features
	}
	if req.Images != nil {
		taxi.Images = req.Images
	}
	if req.IsActive != nil {
		taxi.IsActive = *req.IsActive
	}
	taxi.UpdatedAt = time.Now().UTC()

	if err := s.Taxis.Update(ctx, taxi); err != nil {
		return nil, err
	}
	return taxi, nil
}

func (s *DefaultTaxiService) DeleteTaxi(ctx context.Context, id string) error {
	if err := s.Taxis.Delete(ctx, id); err != nil {
		if errors.Is(err, taxisRepo.ErrTaxiNotFound) {
			return booking.NewError(booking.CodeNotFound, "taxi %s not found", id)
		}
		return err
	}
	return nil
}

// EstimateFare computes the fare for a trip against the vehicle's rate
// card without persisting anything.
func (s *DefaultTaxiService) EstimateFare(ctx context.Context, taxiID string, trip models.TripType, distanceKm float64) (models.TaxiFare, error) {
	taxi, err := s.GetTaxi(ctx, taxiID)
	if err != nil {
		return models.TaxiFare{}, err
	}
	return computeFare(taxi, trip, distanceKm)
}

// computeFare applies the rate card. Airport transfers use the flat rate
// when one is configured, otherwise they fall back to the metered fare.
// Full-day hires always use the flat day rate.
func computeFare(taxi *models.Taxi, trip models.TripType, distanceKm float64) (models.TaxiFare, error) {
	if !trip.Valid() {
		return models.TaxiFare{}, booking.NewError(booking.CodeValidation, "unknown trip type %q", trip)
	}
	if distanceKm < 0 {
		return models.TaxiFare{}, booking.NewError(booking.CodeValidation, "distance must be non-negative")
	}

	fare := models.TaxiFare{
		BasePrice:  taxi.Pricing.BasePrice,
		DistanceKm: distanceKm,
		Currency:   taxi.Pricing.Currency,
	}

	switch trip {
	case models.TripFullDay:
		fare.TotalAmount = taxi.Pricing.FullDayRate
	case models.TripAirport:
		if taxi.Pricing.AirportTransfer > 0 {
			fare.TotalAmount = taxi.Pricing.AirportTransfer
		} else {
			fare.TotalAmount = taxi.Pricing.BasePrice + taxi.Pricing.PricePerKm*distanceKm
		}
	default:
		fare.TotalAmount = taxi.Pricing.BasePrice + taxi.Pricing.PricePerKm*distanceKm
	}
	fare.TotalAmount = booking.Round2(fare.TotalAmount)
	return fare, nil
}

// Book prices and persists a transfer request.
func (s *DefaultTaxiService) Book(ctx context.Context, req BookRequest) (*models.TaxiBooking, error) {
	pickupTime, err := validateBook(req)
	if err != nil {
		return nil, err
	}

	taxi, err := s.GetTaxi(ctx, req.TaxiID)
	if err != nil {
		return nil, err
	}
	if !taxi.IsActive {
		return nil, booking.NewError(booking.CodeConflict, "taxi %s is not available", taxi.ID)
	}
	if req.Passengers > taxi.Capacity.Passengers {
		return nil, booking.NewError(booking.CodeValidation,
			"party exceeds vehicle capacity of %d passengers", taxi.Capacity.Passengers)
	}

	fare, err := computeFare(taxi, req.TripType, req.DistanceKm)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &models.TaxiBooking{
		ID:              uuid.NewString(),
		Reference:       s.reference(),
		TaxiID:          taxi.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TripType:        req.TripType,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupTime:      pickupTime,
		Passengers:      req.Passengers,
		DistanceKm:      req.DistanceKm,
		Fare:            fare,
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go func() {
			if err := s.Notifier.TaxiBookingReceived(context.Background(), b, taxi); err != nil {
				utils.GetLogger().Warn("taxis: notification dispatch failed", zap.Error(err))
			}
		}()
	}
	return b, nil
}

func (s *DefaultTaxiService) GetBooking(ctx context.Context, id string) (*models.TaxiBooking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taxisRepo.ErrBookingNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "taxi booking %s not found", id)
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultTaxiService) ListBookings(ctx context.Context, filter taxisRepo.BookingFilter) ([]models.TaxiBooking, error) {
	return s.Bookings.List(ctx, filter)
}

func (s *DefaultTaxiService) SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.TaxiBooking, error) {
	if !status.Valid() {
		return nil, booking.NewError(booking.CodeValidation, "unknown booking status %q", status)
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DefaultTaxiService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, taxisRepo.ErrBookingNotFound) {
			return booking.NewError(booking.CodeNotFound, "taxi booking %s not found", id)
		}
		return err
	}
	return nil
}

func (s *DefaultTaxiService) reference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return utils.NewBookingReference("YTX")
}

func validateBook(req BookRequest) (time.Time, error) {
	required := []struct {
		field string
		value string
	}{
		{"taxiId", req.TaxiID},
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"customerPhone", req.CustomerPhone},
		{"pickupLocation", req.PickupLocation},
		{"pickupTime", req.PickupTime},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return time.Time{}, booking.NewError(booking.CodeValidation, "missing required field %q", f.field)
		}
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return time.Time{}, booking.NewError(booking.CodeValidation, "invalid email address %q", req.CustomerEmail)
	}
	if req.Passengers < 1 {
		return time.Time{}, booking.NewError(booking.CodeValidation, "at least one passenger is required")
	}
	if req.TripType == models.TripPointToPoint && strings.TrimSpace(req.DropoffLocation) == "" {
		return time.Time{}, booking.NewError(booking.CodeValidation, "missing required field %q", "dropoffLocation")
	}

	pickupTime, err := time.Parse(time.RFC3339, req.PickupTime)
	if err != nil {
		return time.Time{}, booking.NewError(booking.CodeValidation, "invalid pickupTime %q, expected RFC3339", req.PickupTime)
	}
	return pickupTime.UTC(), nil
}
