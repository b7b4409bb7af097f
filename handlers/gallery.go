package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	galleryRepo "yalasafari/database/repository/gallery"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/services/storage"
	"yalasafari/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GalleryHandler manages site gallery images. Uploads go to Cloudinary
// and the resulting public ID is recorded alongside the metadata.
type GalleryHandler struct {
	Repo    galleryRepo.Repository
	Storage storage.StorageService
}

func NewGalleryHandler(repo galleryRepo.Repository, store storage.StorageService) *GalleryHandler {
	return &GalleryHandler{Repo: repo, Storage: store}
}

// List returns gallery images, optionally filtered by category. Admins
// pass ?all=true to include hidden images.
func (h *GalleryHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	list, err := h.Repo.List(c.Request.Context(), c.Query("category"), activeOnly)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

// Upload accepts a multipart image, pushes it to storage, and records
// the gallery entry.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Storage unavailable", "image storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file not provided")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, url, err := h.Storage.UploadFile(c.Request.Context(), tempFilePath, "gallery")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", err.Error())
		return
	}

	order := 0
	if raw := c.PostForm("order"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			order = parsed
		}
	}

	now := time.Now().UTC()
	img := &models.GalleryImage{
		ID:        uuid.NewString(),
		Title:     c.PostForm("title"),
		Category:  c.PostForm("category"),
		URL:       url,
		PublicID:  publicID,
		Order:     order,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Repo.Create(c.Request.Context(), img); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, img)
}

// Update edits image metadata (title, category, order, visibility).
func (h *GalleryHandler) Update(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Order    *int   `json:"order"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	img, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, galleryRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "gallery image %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}

	if req.Title != "" {
		img.Title = req.Title
	}
	if req.Category != "" {
		img.Category = req.Category
	}
	if req.Order != nil {
		img.Order = *req.Order
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	img.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Update(c.Request.Context(), img); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, img)
}

// Delete removes the record and best-effort deletes the stored file.
func (h *GalleryHandler) Delete(c *gin.Context) {
	img, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, galleryRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "gallery image %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), img.ID); err != nil {
		respondErr(c, err)
		return
	}
	if h.Storage != nil && img.PublicID != "" {
		if err := h.Storage.DeleteFile(c.Request.Context(), img.PublicID); err != nil {
			utils.GetLogger().Warn("gallery: failed to delete stored file",
				zap.String("publicId", img.PublicID), zap.Error(err))
		}
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
