package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo serves canned stats and bookings; the write side of
// the repository is unused by the dashboard.
type fakeBookingRepo struct {
	stats    bookingRepo.Stats
	bookings []models.SafariBooking
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.SafariBooking) error { return nil }
func (r *fakeBookingRepo) Update(ctx context.Context, b *models.SafariBooking) error { return nil }
func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error               { return nil }

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.SafariBooking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) GetByReference(ctx context.Context, ref string) (*models.SafariBooking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.SafariBooking, error) {
	out := r.bookings
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveByDate(ctx context.Context, date time.Time) (*models.SafariBooking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ActiveDatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Stats(ctx context.Context) (bookingRepo.Stats, error) {
	return r.stats, nil
}

type memSnapshotStore struct {
	mu        sync.Mutex
	snapshots []models.DashboardStat
	failWith  error
}

func (s *memSnapshotStore) Create(ctx context.Context, snap *models.DashboardStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.snapshots = append(s.snapshots, *snap)
	return nil
}

func (s *memSnapshotStore) Recent(ctx context.Context, limit int64) ([]models.DashboardStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DashboardStat(nil), s.snapshots...), nil
}

func TestOverviewFiguresAndSnapshot(t *testing.T) {
	repo := &fakeBookingRepo{
		stats: bookingRepo.Stats{
			TotalBookings:    7,
			PendingBookings:  2,
			CompletedRevenue: 412.5,
			LocalVisitors:    3,
			ForeignVisitors:  4,
		},
		bookings: []models.SafariBooking{
			{ID: "b1", Reference: "YSF-1"},
			{ID: "b2", Reference: "YSF-2"},
		},
	}
	store := &memSnapshotStore{}
	svc := NewDashboardService(repo, store)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), overview.Stats.TotalBookings)
	assert.Equal(t, int64(2), overview.Stats.PendingBookings)
	assert.Equal(t, 412.5, overview.Stats.Revenue)
	assert.Equal(t, int64(3), overview.Stats.LocalVisitors)
	assert.Equal(t, int64(4), overview.Stats.ForeignVisitors)
	assert.Equal(t, int64(7), overview.Stats.WebsiteVisitors)
	assert.Len(t, overview.RecentBookings, 2)

	// Every overview computation leaves a snapshot behind.
	require.Len(t, store.snapshots, 1)
	assert.Equal(t, int64(7), store.snapshots[0].TotalBookings)
	assert.Equal(t, 412.5, store.snapshots[0].Revenue)
	assert.NotEmpty(t, store.snapshots[0].ID)
}

func TestOverviewLimitsRecentBookings(t *testing.T) {
	repo := &fakeBookingRepo{}
	for i := 0; i < 15; i++ {
		repo.bookings = append(repo.bookings, models.SafariBooking{ID: string(rune('a' + i))})
	}
	svc := NewDashboardService(repo, &memSnapshotStore{})

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.RecentBookings, 10)
}

func TestOverviewSurvivesSnapshotFailure(t *testing.T) {
	repo := &fakeBookingRepo{stats: bookingRepo.Stats{TotalBookings: 1}}
	store := &memSnapshotStore{failWith: errors.New("mongo down")}
	svc := NewDashboardService(repo, store)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.Stats.TotalBookings)
}
