package handlers

import (
	"net/http"
	"strings"

	"yalasafari/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes back-office authentication.
type AdminHandler struct {
	Svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// Login exchanges credentials for a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// Logout revokes the presented token.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		badRequest(c, "missing bearer token")
		return
	}
	if err := h.Svc.Revoke(c.Request.Context(), token); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"loggedOut": true})
}
