package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking engine. Handlers map these to HTTP
// statuses.
const (
	CodeValidation       = "validationError"
	CodeInvalidSelection = "invalidSelection"
	CodeInvalidPartySize = "invalidPartySize"
	CodePricingNotFound  = "pricingNotFound"
	CodeNotFound         = "notFound"
	CodeConflict         = "conflict"
	CodeForbidden        = "forbidden"
	CodeUnauthorized     = "unauthorized"
)

// Error is a coded booking engine error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewError builds a coded error. Sibling services share these codes so
// the HTTP layer maps every domain error the same way.
func NewError(code, format string, args ...any) error {
	return newError(code, format, args...)
}

// ErrCode extracts the booking error code from err, or "" when err is
// not a booking engine error.
func ErrCode(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
