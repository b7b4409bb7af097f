package handlers

import (
	"net/http"

	"yalasafari/services/booking"
	"yalasafari/utils"

	"github.com/gin-gonic/gin"
)

// respondOK wraps payloads in the envelope the site frontend expects.
func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondErr maps domain error codes onto HTTP statuses. Uncoded errors
// are treated as internal and their details are kept out of the body.
func respondErr(c *gin.Context, err error) {
	switch booking.ErrCode(err) {
	case booking.CodeValidation, booking.CodeInvalidSelection, booking.CodeInvalidPartySize:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case booking.CodeUnauthorized:
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
	case booking.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case booking.CodeConflict:
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case booking.CodePricingNotFound:
		utils.JSONError(c, http.StatusServiceUnavailable, "Pricing unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
	}
}

func badRequest(c *gin.Context, detail string) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", detail)
}
