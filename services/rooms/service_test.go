package rooms

import (
	"context"
	"sync"
	"testing"

	roomsRepo "yalasafari/database/repository/rooms"
	"yalasafari/models"
	"yalasafari/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*models.Room
}

func (r *memRoomRepo) Create(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *room
	r.rooms[room.ID] = &copied
	return nil
}

func (r *memRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomsRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (r *memRoomRepo) List(ctx context.Context, activeOnly bool) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Room
	for _, room := range r.rooms {
		if activeOnly && !room.IsActive {
			continue
		}
		out = append(out, *room)
	}
	return out, nil
}

func (r *memRoomRepo) Update(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return roomsRepo.ErrRoomNotFound
	}
	copied := *room
	r.rooms[room.ID] = &copied
	return nil
}

func (r *memRoomRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return roomsRepo.ErrRoomNotFound
	}
	delete(r.rooms, id)
	return nil
}

type memRoomBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.RoomBooking
}

func (r *memRoomBookingRepo) Create(ctx context.Context, b *models.RoomBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRoomBookingRepo) GetByID(ctx context.Context, id string) (*models.RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, roomsRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memRoomBookingRepo) GetByReference(ctx context.Context, ref string) (*models.RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == ref {
			copied := *b
			return &copied, nil
		}
	}
	return nil, roomsRepo.ErrBookingNotFound
}

func (r *memRoomBookingRepo) List(ctx context.Context, filter roomsRepo.BookingFilter) ([]models.RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.RoomBooking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *memRoomBookingRepo) Update(ctx context.Context, b *models.RoomBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return roomsRepo.ErrBookingNotFound
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRoomBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return roomsRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func newTestRoomService(t *testing.T) (*DefaultRoomService, *models.Room) {
	t.Helper()
	svc := NewRoomService(
		&memRoomRepo{rooms: make(map[string]*models.Room)},
		&memRoomBookingRepo{bookings: make(map[string]*models.RoomBooking)},
		nil,
	)
	room, err := svc.CreateRoom(context.Background(), RoomRequest{
		Name:         "Leopard Suite",
		RoomType:     models.RoomSuite,
		Capacity:     models.RoomCapacity{Adults: 2, Children: 2},
		Pricing:      models.RoomPricing{PerNight: 120, Currency: "USD"},
		Availability: models.RoomAvailability{IsAvailable: true, TotalRooms: 3},
	})
	require.NoError(t, err)
	return svc, room
}

func validBookRequest(roomID string) BookRequest {
	return BookRequest{
		RoomID:     roomID,
		GuestName:  "Asha Perera",
		GuestEmail: "asha@example.com",
		GuestPhone: "+94 77 123 4567",
		CheckIn:    "2026-10-05",
		CheckOut:   "2026-10-08",
		Guests:     models.RoomBookingGuests{Adults: 2, Children: 1},
	}
}

func TestBookRoomComputesNightsAndTotal(t *testing.T) {
	svc, room := newTestRoomService(t)

	b, err := svc.Book(context.Background(), validBookRequest(room.ID))
	require.NoError(t, err)

	assert.Equal(t, 3, b.Pricing.Nights)
	assert.Equal(t, 120.0, b.Pricing.RoomRate)
	assert.Equal(t, 360.0, b.Pricing.TotalAmount)
	assert.Equal(t, "USD", b.Pricing.Currency)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.NotEmpty(t, b.Reference)
}

func TestBookRoomRateIsFrozenAtBookingTime(t *testing.T) {
	svc, room := newTestRoomService(t)

	b, err := svc.Book(context.Background(), validBookRequest(room.ID))
	require.NoError(t, err)

	_, err = svc.UpdateRoom(context.Background(), room.ID, RoomRequest{
		Pricing: models.RoomPricing{PerNight: 200, Currency: "USD"},
	})
	require.NoError(t, err)

	stored, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, stored.Pricing.RoomRate)
}

func TestBookRoomCapacityCheck(t *testing.T) {
	svc, room := newTestRoomService(t)

	req := validBookRequest(room.ID)
	req.Guests = models.RoomBookingGuests{Adults: 3}
	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, booking.CodeValidation, booking.ErrCode(err))
}

func TestBookRoomRejectsInvalidDates(t *testing.T) {
	svc, room := newTestRoomService(t)

	req := validBookRequest(room.ID)
	req.CheckOut = req.CheckIn
	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, booking.CodeValidation, booking.ErrCode(err))
}

func TestBookRoomUnavailable(t *testing.T) {
	svc, room := newTestRoomService(t)

	inactive := false
	_, err := svc.UpdateRoom(context.Background(), room.ID, RoomRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), validBookRequest(room.ID))
	require.Error(t, err)
	assert.Equal(t, booking.CodeConflict, booking.ErrCode(err))
}

func TestBookRoomUnknownRoom(t *testing.T) {
	svc, _ := newTestRoomService(t)

	_, err := svc.Book(context.Background(), validBookRequest("missing"))
	require.Error(t, err)
	assert.Equal(t, booking.CodeNotFound, booking.ErrCode(err))
}

func TestSetRoomBookingStatus(t *testing.T) {
	svc, room := newTestRoomService(t)

	b, err := svc.Book(context.Background(), validBookRequest(room.ID))
	require.NoError(t, err)

	updated, err := svc.SetBookingStatus(context.Background(), b.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	_, err = svc.SetBookingStatus(context.Background(), b.ID, "lost")
	require.Error(t, err)
	assert.Equal(t, booking.CodeValidation, booking.ErrCode(err))
}
