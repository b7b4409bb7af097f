package handlers

import (
	"net/http"
	"time"

	bookingRepo "yalasafari/database/repository/booking"
	"yalasafari/models"
	"yalasafari/services/booking"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the safari booking engine over HTTP.
type BookingHandler struct {
	Svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CalculatePrice quotes a safari without creating a booking.
func (h *BookingHandler) CalculatePrice(c *gin.Context) {
	var req booking.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	prices, err := h.Svc.Quote(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, prices)
}

// CheckAvailability reports whether a calendar date is free.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		badRequest(c, "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		badRequest(c, "invalid date '"+raw+"', expected YYYY-MM-DD")
		return
	}
	avail, err := h.Svc.CheckAvailability(c.Request.Context(), date)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, avail)
}

// BookedDates lists taken dates in a range for the calendar widget.
func (h *BookingHandler) BookedDates(c *gin.Context) {
	now := time.Now().UTC()
	from, to := now, now.AddDate(0, 3, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(c, "invalid from date '"+raw+"', expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(c, "invalid to date '"+raw+"', expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	dates, err := h.Svc.BookedDates(c.Request.Context(), from, to)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"bookedDates": dates})
}

// Create accepts a customer booking submission.
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, b)
}

// List returns bookings for the admin dashboard, optionally filtered by
// status and date range.
func (h *BookingHandler) List(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status: models.BookingStatus(c.Query("status")),
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(c, "invalid from date '"+raw+"', expected YYYY-MM-DD")
			return
		}
		filter.From = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(c, "invalid to date '"+raw+"', expected YYYY-MM-DD")
			return
		}
		filter.To = parsed
	}

	bookings, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

// UpdateContact edits contact details and admin notes.
func (h *BookingHandler) UpdateContact(c *gin.Context) {
	var req booking.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	b, err := h.Svc.UpdateContact(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	b, err := h.Svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a rejection without a reason is allowed.
	_ = c.ShouldBindJSON(&req)

	b, err := h.Svc.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *BookingHandler) SetPaymentStatus(c *gin.Context) {
	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	b, err := h.Svc.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

// Delete removes a booking. Confirmed bookings require ?force=true.
func (h *BookingHandler) Delete(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), force); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
