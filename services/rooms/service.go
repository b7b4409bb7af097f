package rooms

import (
	"context"
	"errors"
	"strings"
	"time"

	roomsRepo "yalasafari/database/repository/rooms"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (s *DefaultRoomService) CreateRoom(ctx context.Context, req RoomRequest) (*models.Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, booking.NewError(booking.CodeValidation, "missing required field %q", "name")
	}
	if !req.RoomType.Valid() {
		return nil, booking.NewError(booking.CodeValidation, "unknown room type %q", req.RoomType)
	}
	if req.Pricing.PerNight <= 0 {
		return nil, booking.NewError(booking.CodeValidation, "perNight rate must be positive")
	}

	now := time.Now().UTC()
	room := &models.Room{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		RoomType:     req.RoomType,
		Capacity:     req.Capacity,
		Pricing:      req.Pricing,
		Amenities:    req.Amenities,
		Images:       req.Images,
		Availability: req.Availability,
		Policies:     req.Policies,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if room.Pricing.Currency == "" {
		room.Pricing.Currency = "USD"
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if err := s.Rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "room %s not found", id)
		}
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) ListRooms(ctx context.Context, activeOnly bool) ([]models.Room, error) {
	return s.Rooms.List(ctx, activeOnly)
}

func (s *DefaultRoomService) UpdateRoom(ctx context.Context, id string, req RoomRequest) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.RoomType != "" {
		if !req.RoomType.Valid() {
			return nil, booking.NewError(booking.CodeValidation, "unknown room type %q", req.RoomType)
		}
		room.RoomType = req.RoomType
	}
	if req.Capacity.Adults > 0 {
		room.Capacity = req.Capacity
	}
	if req.Pricing.PerNight > 0 {
		room.Pricing = req.Pricing
		if room.Pricing.Currency == "" {
			room.Pricing.Currency = "USD"
		}
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.Images != nil {
		room.Images = req.Images
	}
	if req.Availability.TotalRooms > 0 || req.Availability.IsAvailable {
		room.Availability = req.Availability
	}
	if req.Policies.CheckIn != "" || req.Policies.CheckOut != "" {
		room.Policies = req.Policies
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.Rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.Rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			return booking.NewError(booking.CodeNotFound, "room %s not found", id)
		}
		return err
	}
	return nil
}

// Book prices and persists a stay request. The nightly rate is read
// from the room at booking time so later rate changes do not reprice
// existing bookings.
func (s *DefaultRoomService) Book(ctx context.Context, req BookRequest) (*models.RoomBooking, error) {
	checkIn, checkOut, err := validateBook(req)
	if err != nil {
		return nil, err
	}

	room, err := s.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive || !room.Availability.IsAvailable {
		return nil, booking.NewError(booking.CodeConflict, "room %s is not available", room.ID)
	}
	if req.Guests.Adults > room.Capacity.Adults || req.Guests.Children > room.Capacity.Children {
		return nil, booking.NewError(booking.CodeValidation,
			"party exceeds room capacity of %d adults and %d children",
			room.Capacity.Adults, room.Capacity.Children)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := booking.Round2(room.Pricing.PerNight * float64(nights))

	now := time.Now().UTC()
	b := &models.RoomBooking{
		ID:         uuid.NewString(),
		Reference:  s.reference(),
		RoomID:     room.ID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		Pricing: models.RoomBookingPricing{
			RoomRate:    room.Pricing.PerNight,
			Nights:      nights,
			TotalAmount: total,
			Currency:    room.Pricing.Currency,
		},
		SpecialRequests: req.SpecialRequests,
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
			if err := s.Notifier.RoomBookingReceived(context.Background(), b, room); err != nil {
				utils.GetLogger().Warn("rooms: notification dispatch failed", zap.Error(err))
			}
		}()
	}
	return b, nil
}

func (s *DefaultRoomService) GetBooking(ctx context.Context, id string) (*models.RoomBooking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrBookingNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "room booking %s not found", id)
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultRoomService) ListBookings(ctx context.Context, filter roomsRepo.BookingFilter) ([]models.RoomBooking, error) {
	return s.Bookings.List(ctx, filter)
}

func (s *DefaultRoomService) SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.RoomBooking, error) {
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

func (s *DefaultRoomService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, roomsRepo.ErrBookingNotFound) {
			return booking.NewError(booking.CodeNotFound, "room booking %s not found", id)
		}
		return err
	}
	return nil
}

func (s *DefaultRoomService) reference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return utils.NewBookingReference("YRM")
}

func validateBook(req BookRequest) (checkIn, checkOut time.Time, err error) {
	required := []struct {
		field string
		value string
	}{
		{"roomId", req.RoomID},
		{"guestName", req.GuestName},
		{"guestEmail", req.GuestEmail},
		{"guestPhone", req.GuestPhone},
		{"checkIn", req.CheckIn},
		{"checkOut", req.CheckOut},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return checkIn, checkOut, booking.NewError(booking.CodeValidation, "missing required field %q", f.field)
		}
	}
	if !strings.Contains(req.GuestEmail, "@") {
		return checkIn, checkOut, booking.NewError(booking.CodeValidation, "invalid email address %q", req.GuestEmail)
	}
	if req.Guests.Adults < 1 {
		return checkIn, checkOut, booking.NewError(booking.CodeValidation, "at least one adult guest is required")
	}

	checkIn, err = time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return checkIn, checkOut, booking.NewError(booking.CodeValidation, "invalid checkIn date %q, expected YYYY-MM-DD", req.CheckIn)
	}
	checkOut, err = time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return checkIn, checkOut, booking.NewError(booking.CodeValidation, "invalid checkOut date %q, expected YYYY-MM-DD", req.CheckOut)
	}
	checkIn = models.NormalizeDate(checkIn)
	checkOut = models.NormalizeDate(checkOut)
	if !checkOut.After(checkIn) {
		return checkIn, checkOut, booking.NewError(booking.CodeValidation, "checkOut must be after checkIn")
	}
	return checkIn, checkOut, nil
}
