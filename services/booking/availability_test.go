package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailabilityFreeDate(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	date, _ := time.Parse("2006-01-02", "2026-10-05")
	avail, err := svc.CheckAvailability(context.Background(), date)
	require.NoError(t, err)

	assert.True(t, avail.Available)
	assert.Equal(t, "2026-10-05", avail.Date)
	assert.Nil(t, avail.Conflict)
}

func TestCheckAvailabilityConflictCarriesNoPII(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	date, _ := time.Parse("2006-01-02", "2026-10-05")
	avail, err := svc.CheckAvailability(context.Background(), date)
	require.NoError(t, err)

	assert.False(t, avail.Available)
	require.NotNil(t, avail.Conflict)
	assert.Equal(t, b.Reference, avail.Conflict.Reference)
	assert.Equal(t, b.Status, avail.Conflict.Status)
	assert.Equal(t, b.TimeSlot, avail.Conflict.TimeSlot)
}

func TestCheckAvailabilityNormalizesTimeOfDay(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Same calendar date at 15:04 local still conflicts.
	afternoon := time.Date(2026, 10, 5, 15, 4, 0, 0, time.UTC)
	avail, err := svc.CheckAvailability(context.Background(), afternoon)
	require.NoError(t, err)
	assert.False(t, avail.Available)
}

func TestCancelledBookingFreesTheDate(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), b.ID, "no jeep available")
	require.NoError(t, err)

	date, _ := time.Parse("2006-01-02", "2026-10-05")
	avail, err := svc.CheckAvailability(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, avail.Available)
}

func TestBookedDates(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	first := validCreateRequest()
	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Date = "2026-10-07"
	second.CustomerEmail = "second@example.com"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	from, _ := time.Parse("2006-01-02", "2026-10-01")
	to, _ := time.Parse("2006-01-02", "2026-10-31")
	dates, err := svc.BookedDates(context.Background(), from, to)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"2026-10-05", "2026-10-07"}, dates)
}
