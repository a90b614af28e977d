// File: /utils/validators_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("skipper@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.es"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+34 600 123 456"))
	assert.True(t, IsValidPhone("600123456"))
	assert.True(t, IsValidPhone("(971) 123-456"))

	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("call me"))
	assert.False(t, IsValidPhone(""))
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidLatitude(39.57))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.1))

	assert.True(t, IsValidLongitude(2.65))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}

func TestIsValidBoundingBox(t *testing.T) {
	assert.True(t, IsValidBoundingBox(40, 39, 3, 2))

	// Boxes crossing the antimeridian keep west > east
	assert.True(t, IsValidBoundingBox(10, -10, -170, 170))

	// Inverted latitudes
	assert.False(t, IsValidBoundingBox(39, 40, 3, 2))
	// Out of range bound
	assert.False(t, IsValidBoundingBox(95, 39, 3, 2))
}

func TestIsValidBuildYear(t *testing.T) {
	assert.True(t, IsValidBuildYear(1990))
	assert.True(t, IsValidBuildYear(time.Now().Year()))
	assert.False(t, IsValidBuildYear(1899))
	assert.False(t, IsValidBuildYear(time.Now().Year()+1))
}

func TestIsValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
}
