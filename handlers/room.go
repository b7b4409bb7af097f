package handlers

import (
	"net/http"
	"time"

	roomsRepo "yalasafari/database/repository/rooms"
	"yalasafari/models"
	"yalasafari/services/rooms"

	"github.com/gin-gonic/gin"
)

// RoomHandler exposes the room catalogue and room bookings.
type RoomHandler struct {
	Svc rooms.Service
}

func NewRoomHandler(svc rooms.Service) *RoomHandler {
	return &RoomHandler{Svc: svc}
}

// List returns the public catalogue. Admins pass ?all=true to include
// inactive rooms.
func (h *RoomHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	list, err := h.Svc.ListRooms(c.Request.Context(), activeOnly)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.Svc.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, room)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req rooms.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	room, err := h.Svc.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	var req rooms.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	room, err := h.Svc.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// Book submits a stay request for a room.
func (h *RoomHandler) Book(c *gin.Context) {
	var req rooms.BookRequest
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

func (h *RoomHandler) ListBookings(c *gin.Context) {
	filter := roomsRepo.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
		RoomID: c.Query("roomId"),
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

func (h *RoomHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, b)
}

func (h *RoomHandler) SetBookingStatus(c *gin.Context) {
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

func (h *RoomHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
