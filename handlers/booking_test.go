package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
	"yalasafari/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService lets each test pin the behavior of the one method
// it exercises.
type stubBookingService struct {
	quote  func(req booking.QuoteRequest) (models.PriceBreakdown, error)
	create func(req booking.CreateRequest) (*models.SafariBooking, error)
	avail  func(date time.Time) (booking.Availability, error)
	del    func(id string, force bool) error
}

func (s *stubBookingService) Quote(ctx context.Context, req booking.QuoteRequest) (models.PriceBreakdown, error) {
	return s.quote(req)
}

func (s *stubBookingService) CheckAvailability(ctx context.Context, date time.Time) (booking.Availability, error) {
	return s.avail(date)
}

func (s *stubBookingService) BookedDates(ctx context.Context, from, to time.Time) ([]string, error) {
	return nil, nil
}

func (s *stubBookingService) Create(ctx context.Context, req booking.CreateRequest) (*models.SafariBooking, error) {
	return s.create(req)
}

func (s *stubBookingService) Get(ctx context.Context, id string) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.SafariBooking, error) {
	return nil, nil
}

func (s *stubBookingService) UpdateContact(ctx context.Context, id string, req booking.UpdateRequest) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) Approve(ctx context.Context, id string) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) Reject(ctx context.Context, id, reason string) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) Complete(ctx context.Context, id string) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.SafariBooking, error) {
	return nil, booking.NewError(booking.CodeNotFound, "booking %s not found", id)
}

func (s *stubBookingService) Delete(ctx context.Context, id string, force bool) error {
	return s.del(id, force)
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings/calculate-price", h.CalculatePrice)
	r.GET("/api/bookings/availability", h.CheckAvailability)
	r.POST("/api/bookings", h.Create)
	r.DELETE("/api/bookings/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculatePriceEndpoint(t *testing.T) {
	svc := &stubBookingService{
		quote: func(req booking.QuoteRequest) (models.PriceBreakdown, error) {
			assert.Equal(t, models.VisitorForeign, req.VisitorType)
			return models.PriceBreakdown{
				TicketPrice: 30, JeepPrice: 65, GuidePrice: 15, TotalPrice: 110,
			}, nil
		},
	}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/calculate-price", gin.H{
		"visitorType": "foreign",
		"people":      2,
		"timeSlot":    "morning",
		"jeepGrade":   "luxury",
		"guideOption": "driverGuide",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                  `json:"success"`
		Data    models.PriceBreakdown `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 110.0, resp.Data.TotalPrice)
}

func TestCalculatePriceErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"party size", booking.NewError(booking.CodeInvalidPartySize, "party size must be between 1 and 7"), http.StatusBadRequest},
		{"selection", booking.NewError(booking.CodeInvalidSelection, "unknown jeep grade"), http.StatusBadRequest},
		{"no pricing", booking.NewError(booking.CodePricingNotFound, "no active pricing package"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubBookingService{
				quote: func(req booking.QuoteRequest) (models.PriceBreakdown, error) {
					return models.PriceBreakdown{}, tc.err
				},
			}
			r := newBookingRouter(svc)

			w := doJSON(t, r, http.MethodPost, "/api/bookings/calculate-price", gin.H{"people": 2})
			require.Equal(t, tc.status, w.Code)

			var resp struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestCreateBookingConflictMapsTo409(t *testing.T) {
	svc := &stubBookingService{
		create: func(req booking.CreateRequest) (*models.SafariBooking, error) {
			return nil, booking.NewError(booking.CodeConflict, "date 2026-10-05 is already booked")
		},
	}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"date": "2026-10-05"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAvailabilityEndpointRequiresDate(t *testing.T) {
	svc := &stubBookingService{
		avail: func(date time.Time) (booking.Availability, error) {
			return booking.Availability{Date: date.Format("2006-01-02"), Available: true}, nil
		},
	}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/availability", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/availability?date=2026-10-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteForceFlag(t *testing.T) {
	var gotForce bool
	svc := &stubBookingService{
		del: func(id string, force bool) error {
			gotForce = force
			if !force {
				return booking.NewError(booking.CodeForbidden, "booking %s is confirmed", id)
			}
			return nil
		},
	}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, gotForce)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/abc?force=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotForce)
}
