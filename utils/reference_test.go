package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingReferenceFormat(t *testing.T) {
	ref := NewBookingReference("YSF")

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "YSF", parts[0])
	assert.Equal(t, time.Now().UTC().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 6)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestNewBookingReferenceVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewBookingReference("YSF")
		require.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
