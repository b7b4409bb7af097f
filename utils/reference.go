package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingReference generates a human-readable booking reference of the
// form PREFIX-YYYYMMDD-XXXXXX. The suffix is random; the reference is an
// opaque external identifier and is not the storage primary key.
func NewBookingReference(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix)
}
