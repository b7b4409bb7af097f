package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	reviewsRepo "yalasafari/database/repository/reviews"
	"yalasafari/models"
	"yalasafari/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler manages customer testimonials. Submissions are held in
// pending status until an admin approves them for publication.
type ReviewHandler struct {
	Repo reviewsRepo.Repository
}

func NewReviewHandler(repo reviewsRepo.Repository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

type reviewRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhoto string             `json:"customerPhoto"`
	Rating        int                `json:"rating"`
	Message       string             `json:"message"`
	ServiceType   models.ServiceType `json:"serviceType"`
	BookingRef    string             `json:"bookingRef"`
}

// Submit accepts a public review submission.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.Message) == "" {
		badRequest(c, "customerName and message are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		badRequest(c, "rating must be between 1 and 5")
		return
	}
	if req.ServiceType == "" {
		req.ServiceType = models.ServiceOverall
	}

	now := time.Now().UTC()
	review := &models.Review{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhoto: req.CustomerPhoto,
		Rating:        req.Rating,
		Message:       req.Message,
		ServiceType:   req.ServiceType,
		BookingRef:    req.BookingRef,
		Status:        models.ReviewPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := h.Repo.Create(c.Request.Context(), review); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, review)
}

// ListPublished returns approved, published reviews for the site.
func (h *ReviewHandler) ListPublished(c *gin.Context) {
	filter := reviewsRepo.ListFilter{
		PublishedOnly: true,
		FeaturedOnly:  c.Query("featured") == "true",
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

// ListAll returns every review for moderation.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	filter := reviewsRepo.ListFilter{
		Status: models.ReviewStatus(c.Query("status")),
	}
	list, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

// Moderate sets review status, publication, and the admin response.
func (h *ReviewHandler) Moderate(c *gin.Context) {
	var req struct {
		Status        models.ReviewStatus `json:"status"`
		IsPublished   *bool               `json:"isPublished"`
		IsFeatured    *bool               `json:"isFeatured"`
		AdminResponse string              `json:"adminResponse"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	review, err := h.getReview(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			badRequest(c, "unknown review status '"+string(req.Status)+"'")
			return
		}
		review.Status = req.Status
		// Rejection always unpublishes.
		if req.Status == models.ReviewRejected {
			review.IsPublished = false
		}
	}
	if req.IsPublished != nil {
		if *req.IsPublished && review.Status != models.ReviewApproved {
			badRequest(c, "only approved reviews can be published")
			return
		}
		review.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		review.IsFeatured = *req.IsFeatured
	}
	if req.AdminResponse != "" {
		review.AdminResponse = req.AdminResponse
		now := time.Now().UTC()
		review.RespondedAt = &now
	}
	review.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Update(c.Request.Context(), review); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, review)
}

// MarkHelpful bumps the public helpful counter.
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	if err := h.Repo.IncrementHelpful(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, reviewsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "review %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"marked": true})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, reviewsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "review %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *ReviewHandler) getReview(c *gin.Context) (*models.Review, error) {
	review, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, reviewsRepo.ErrNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "review %s not found", c.Param("id"))
		}
		return nil, err
	}
	return review, nil
}
