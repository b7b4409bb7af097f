package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	blogsRepo "yalasafari/database/repository/blogs"
	"yalasafari/models"
	"yalasafari/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlogHandler manages site articles.
type BlogHandler struct {
	Repo blogsRepo.Repository
}

func NewBlogHandler(repo blogsRepo.Repository) *BlogHandler {
	return &BlogHandler{Repo: repo}
}

type blogRequest struct {
	Title      string            `json:"title"`
	Slug       string            `json:"slug"`
	Excerpt    string            `json:"excerpt"`
	Body       string            `json:"body"`
	CoverImage string            `json:"coverImage"`
	Author     string            `json:"author"`
	Tags       []string          `json:"tags"`
	Status     models.BlogStatus `json:"status"`
}

// List returns published posts. Admins pass ?all=true to include drafts.
func (h *BlogHandler) List(c *gin.Context) {
	publishedOnly := c.Query("all") != "true"
	var limit, skip int64
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			skip = parsed
		}
	}

	list, err := h.Repo.List(c.Request.Context(), publishedOnly, limit, skip)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

// GetBySlug serves a single post by its URL slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, blogsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "blog post %q not found", c.Param("slug")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		badRequest(c, "title and body are required")
		return
	}
	if req.Slug == "" {
		req.Slug = slugify(req.Title)
	}
	if req.Status == "" {
		req.Status = models.BlogDraft
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if post.Status == models.BlogPublished {
		post.PublishedAt = &now
	}
	if err := h.Repo.Create(c.Request.Context(), post); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	post, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, blogsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "blog post %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Slug != "" {
		post.Slug = req.Slug
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Body != "" {
		post.Body = req.Body
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Status != "" {
		// First transition to published stamps the publication time.
		if req.Status == models.BlogPublished && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.Status = req.Status
	}
	post.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Update(c.Request.Context(), post); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, blogsRepo.ErrNotFound) {
			respondErr(c, booking.NewError(booking.CodeNotFound, "blog post %s not found", c.Param("id")))
			return
		}
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// slugify lowercases the title and collapses runs of non-alphanumerics
// into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
