package handlers

import (
	"net/http"
	"strconv"
	"time"

	taxisRepo "yalasafari/database/repository/taxis"
	"yalasafari/models"
	"yalasafari/services/taxis"

	"github.com/gin-gonic/gin"
)

// TaxiHandler exposes the transfer fleet and taxi bookings.
type TaxiHandler struct {
	Svc taxis.Service
}

func NewTaxiHandler(svc taxis.Service) *TaxiHandler {
	return &TaxiHandler{Svc: svc}
}

func (h *TaxiHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	list, err := h.Svc.ListTaxis(c.Request.Context(), activeOnly)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *TaxiHandler) Get(c *gin.Context) {
	taxi, err := h.Svc.GetTaxi(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, taxi)
}

func (h *TaxiHandler) Create(c *gin.Context) {
	var req taxis.TaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	taxi, err := h.Svc.CreateTaxi(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, taxi)
}

func (h *TaxiHandler) Update(c *gin.Context) {
	var req taxis.TaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	taxi, err := h.Svc.UpdateTaxi(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, taxi)
}

func (h *TaxiHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteTaxi(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// EstimateFare quotes a trip against a vehicle's rate card.
func (h *TaxiHandler) EstimateFare(c *gin.Context) {
	trip := models.TripType(c.Query("tripType"))
	distance := 0.0
	if raw := c.Query("distanceKm"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "invalid distanceKm '"+raw+"'")
			return
		}
		distance = parsed
	}

	fare, err := h.Svc.EstimateFare(c.Request.Context(), c.Param("id"), trip, distance)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, fare)
}

func (h *TaxiHandler) Book(c *gin.Context) {
	var req taxis.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	b, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, b)
}

func (h *TaxiHandler) ListBookings(c *gin.Context) {
	filter := taxisRepo.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
		TaxiID: c.Query("taxiId"),
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

	list, err := h.Svc.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *TaxiHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *TaxiHandler) SetBookingStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	b, err := h.Svc.SetBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *TaxiHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
