package booking

import (
	"context"
	"testing"
	"time"

	"yalasafari/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		CustomerName:  "Asha Perera",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+94 77 123 4567",
		Date:          "2026-10-05",
		VisitorType:   models.VisitorForeign,
		TimeSlot:      models.SlotMorning,
		JeepGrade:     models.JeepLuxury,
		GuideOption:   models.GuideDriverGuide,
		People:        2,
		Meals:         models.MealSelection{Option: models.MealsNone},
	}
}

func waitForEvents(t *testing.T, n *recordingNotifier, want int) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(n.Events()) >= want
	}, time.Second, 5*time.Millisecond)
	return n.Events()
}

func TestCreateBooking(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(notifier)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, 110.0, b.Prices.TotalPrice)
	assert.Equal(t, models.NormalizeDate(b.Date), b.Date)

	events := waitForEvents(t, notifier, 1)
	assert.Equal(t, "received:"+b.Reference, events[0])
}

func TestCreateBookingIgnoresClientPrices(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	// The request type carries no price fields at all; whatever the
	// client sends is dropped at bind time and the server computes.
	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 30.0, b.Prices.TicketPrice)
	assert.Equal(t, b.Prices.TotalPrice,
		Round2(b.Prices.TicketPrice+b.Prices.JeepPrice+b.Prices.GuidePrice+b.Prices.MealPrice))
}

func TestCreateBookingDateConflict(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(notifier)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	waitForEvents(t, notifier, 1)

	second := validCreateRequest()
	second.CustomerName = "Nimal Silva"
	second.CustomerEmail = "nimal@example.com"
	_, err = svc.Create(context.Background(), second)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrCode(err))

	// The rejected attempt must not trigger a notification.
	assert.Len(t, notifier.Events(), 1)
}

func TestCreateBookingCancelledDateIsReusable(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), first.ID, "schedule change")
	require.NoError(t, err)

	second := validCreateRequest()
	second.CustomerEmail = "other@example.com"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)
}

func TestApprove(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(notifier)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	waitForEvents(t, notifier, 1)

	approved, err := svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, approved.Status)

	events := waitForEvents(t, notifier, 2)
	assert.Equal(t, "confirmed:"+b.Reference, events[1])

	// Approving again is a conflict and sends nothing.
	_, err = svc.Approve(context.Background(), b.ID)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrCode(err))
	assert.Len(t, notifier.Events(), 2)
}

func TestRejectStoresReasonVerbatim(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(notifier)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	waitForEvents(t, notifier, 1)

	const reason = "Park closed for maintenance on that date"
	rejected, err := svc.Reject(context.Background(), b.ID, reason)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, rejected.Status)
	assert.Equal(t, reason, rejected.AdminNotes)

	events := waitForEvents(t, notifier, 2)
	assert.Equal(t, "rejected:"+b.Reference+":"+reason, events[1])

	// A second rejection fails without re-sending the email.
	_, err = svc.Reject(context.Background(), b.ID, reason)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrCode(err))
	assert.Len(t, notifier.Events(), 2)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), b.ID)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrCode(err))

	_, err = svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)
	completed, err := svc.Complete(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)
}

func TestSetPaymentStatusIsIndependentOfLifecycle(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.SetPaymentStatus(context.Background(), b.ID, models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, models.BookingPending, updated.Status)

	// Payment can still change after cancellation, e.g. a refund.
	_, err = svc.Reject(context.Background(), b.ID, "")
	require.NoError(t, err)
	updated, err = svc.SetPaymentStatus(context.Background(), b.ID, models.PaymentRefunded)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, updated.PaymentStatus)

	_, err = svc.SetPaymentStatus(context.Background(), b.ID, "gifted")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrCode(err))
}

func TestDeletePolicy(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), b.ID)
	require.NoError(t, err)

	// Confirmed bookings cannot be silently deleted.
	err = svc.Delete(context.Background(), b.ID, false)
	require.Error(t, err)
	assert.Equal(t, CodeForbidden, ErrCode(err))

	require.NoError(t, svc.Delete(context.Background(), b.ID, true))

	err = svc.Delete(context.Background(), b.ID, false)
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrCode(err))
}

func TestUpdateContactLeavesSelectionsAlone(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateContact(context.Background(), b.ID, UpdateRequest{
		CustomerPhone: "+94 71 999 0000",
		AdminNotes:    "repeat customer",
	})
	require.NoError(t, err)
	assert.Equal(t, "+94 71 999 0000", updated.CustomerPhone)
	assert.Equal(t, "repeat customer", updated.AdminNotes)
	assert.Equal(t, b.Prices, updated.Prices)
	assert.Equal(t, b.TimeSlot, updated.TimeSlot)
}
