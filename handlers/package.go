package handlers

import (
	"net/http"

	"yalasafari/services/booking"
	"yalasafari/services/pricing"

	"github.com/gin-gonic/gin"
)

// PackageHandler exposes pricing packages. The active package is public
// so the booking form can render rates; mutations are admin-only.
type PackageHandler struct {
	Svc pricing.Service
}

func NewPackageHandler(svc pricing.Service) *PackageHandler {
	return &PackageHandler{Svc: svc}
}

// GetActive returns the package the calculator quotes against.
func (h *PackageHandler) GetActive(c *gin.Context) {
	pkg, err := h.Svc.ActivePackage(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	if pkg == nil {
		respondErr(c, booking.NewError(booking.CodePricingNotFound, "no active pricing package is configured"))
		return
	}
	respondOK(c, http.StatusOK, pkg)
}

func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, pkgs)
}

func (h *PackageHandler) Get(c *gin.Context) {
	pkg, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, pkg)
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req pricing.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	pkg, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	var req pricing.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	pkg, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, pkg)
}
