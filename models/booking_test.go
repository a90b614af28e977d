// File: /models/booking_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(10), date(13)))
	assert.Equal(t, 1, Nights(date(10), date(11)))

	// Partial days round up
	start := date(10)
	assert.Equal(t, 2, Nights(start, start.Add(30*time.Hour)))
	assert.Equal(t, 1, Nights(start, start.Add(6*time.Hour)))

	// Degenerate ranges bill nothing
	assert.Equal(t, 0, Nights(date(10), date(10)))
	assert.Equal(t, 0, Nights(date(13), date(10)))
}

func TestOverlaps(t *testing.T) {
	// Plain intersection
	assert.True(t, Overlaps(date(10), date(13), date(12), date(15)))
	assert.True(t, Overlaps(date(12), date(15), date(10), date(13)))

	// Containment
	assert.True(t, Overlaps(date(10), date(20), date(12), date(14)))

	// Back to back ranges share no night
	assert.False(t, Overlaps(date(10), date(13), date(13), date(15)))
	assert.False(t, Overlaps(date(13), date(15), date(10), date(13)))

	// Disjoint
	assert.False(t, Overlaps(date(1), date(3), date(10), date(12)))
}
