package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	contactsRepo "yalasafari/database/repository/contacts"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/services/notification"
	"yalasafari/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactHandler accepts contact form submissions and exposes the admin
// inbox. Each submission alerts the back office and thanks the sender by
// email; delivery failures never fail the submission.
type ContactHandler struct {
	Repo     contactsRepo.Repository
	Notifier notification.Notifier
}

func NewContactHandler(repo contactsRepo.Repository, notifier notification.Notifier) *ContactHandler {
	return &ContactHandler{Repo: repo, Notifier: notifier}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a contact form enquiry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		badRequest(c, "name, email, and message are required")
		return
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), msg); err != nil {
		respondErr(c, err)
		return
	}

	if h.Notifier != nil {
		dispatched := *msg
		go func() {
			if err := h.Notifier.ContactReceived(context.Background(), &dispatched); err != nil {
				utils.GetLogger().Warn("contact: notification dispatch failed", zap.Error(err))
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your message! We will contact you soon.",
		"data":    msg,
	})
}

// List returns the admin inbox, newest first.
func (h *ContactHandler) List(c *gin.Context) {
	filter := contactsRepo.ListFilter{
		UnreadOnly: c.Query("unread") == "true",
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	list, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

// MarkRead flags an inbox message as handled.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.Repo.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, contactsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "contact message %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"read": true})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, contactsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "contact message %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
