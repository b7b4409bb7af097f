package booking

import (
	"strings"
	"time"

	"yalasafari/models"
)

const dateLayout = "2006-01-02"

// validateCreate checks required fields and parses the calendar date.
// Enum values and party size are validated by the pricing calculator;
// this layer only guards presence and shape.
func validateCreate(req CreateRequest) (time.Time, error) {
	required := []struct {
		field string
		value string
	}{
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"customerPhone", req.CustomerPhone},
		{"date", req.Date},
		{"visitorType", string(req.VisitorType)},
		{"timeSlot", string(req.TimeSlot)},
		{"jeepGrade", string(req.JeepGrade)},
		{"guideOption", string(req.GuideOption)},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return time.Time{}, newError(CodeValidation, "missing required field %q", f.field)
		}
	}
	if req.People == 0 {
		return time.Time{}, newError(CodeValidation, "missing required field %q", "people")
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return time.Time{}, newError(CodeValidation, "invalid email address %q", req.CustomerEmail)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return time.Time{}, newError(CodeValidation, "invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	return models.NormalizeDate(date), nil
}
