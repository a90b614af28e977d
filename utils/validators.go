// File: /utils/validators.go
package utils

import (
	"regexp"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[+]?\d[\d\s()\-]{6,}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// IsValidBoundingBox validates all four bounds of a north/south/east/west box.
func IsValidBoundingBox(north, south, east, west float64) bool {
	return IsValidLatitude(north) && IsValidLatitude(south) &&
		IsValidLongitude(east) && IsValidLongitude(west) &&
		south <= north
}

func IsValidBuildYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()
}

func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
