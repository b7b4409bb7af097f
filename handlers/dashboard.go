package handlers

import (
	"net/http"

	"yalasafari/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	Svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// Overview returns booking counters, completed revenue, the visitor
// split, and the latest bookings.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.Svc.Overview(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, overview)
}
