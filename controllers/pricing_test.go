// File: /controllers/pricing_test.go
package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sailshare-api/models"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePriceBase(t *testing.T) {
	b := ComputePrice(150, day(1), day(4), false, false, models.RentalTypeBoatOnly, false)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 450.0, b.BaseAmount)
	assert.Equal(t, 450.0, b.Total)
	assert.Equal(t, "EUR", b.Currency)
}

func TestComputePriceAddOns(t *testing.T) {
	b := ComputePrice(150, day(1), day(4), true, true, models.RentalTypeBoatOnly, false)

	assert.Equal(t, CaptainFee, b.CaptainFee)
	assert.Equal(t, FuelFee, b.FuelFee)
	assert.Equal(t, 450.0+CaptainFee+FuelFee, b.Total)
}

func TestComputePriceRentalTypeFees(t *testing.T) {
	withCaptain := ComputePrice(100, day(1), day(3), false, false, models.RentalTypeWithCaptain, false)
	assert.Equal(t, WithCaptainFee, withCaptain.RentalTypeFee)
	assert.Equal(t, 200.0+WithCaptainFee, withCaptain.Total)

	ownerOnboard := ComputePrice(100, day(1), day(3), false, false, models.RentalTypeOwnerOnboard, false)
	assert.Equal(t, OwnerOnboardFee, ownerOnboard.RentalTypeFee)

	boatOnly := ComputePrice(100, day(1), day(3), false, false, models.RentalTypeBoatOnly, false)
	assert.Equal(t, 0.0, boatOnly.RentalTypeFee)
}

func TestComputePriceFlexibleCancellation(t *testing.T) {
	// Surcharge applies to the base only, rounded to whole euros
	b := ComputePrice(155, day(1), day(2), true, false, models.RentalTypeBoatOnly, true)

	assert.Equal(t, 155.0, b.BaseAmount)
	assert.Equal(t, 16.0, b.FlexibleCancellation) // round(15.5)
	assert.Equal(t, 155.0+CaptainFee+16.0, b.Total)
}

func TestComputePricePartialDayRoundsUp(t *testing.T) {
	start := day(1)
	end := start.Add(30 * time.Hour)

	b := ComputePrice(100, start, end, false, false, models.RentalTypeBoatOnly, false)
	assert.Equal(t, 2, b.Nights)
	assert.Equal(t, 200.0, b.BaseAmount)
}

func TestNewPaymentRef(t *testing.T) {
	intentID, clientSecret := newPaymentRef()

	assert.Regexp(t, `^pi_mock_\d+_\d+$`, intentID)
	assert.Equal(t, intentID+"_secret", clientSecret)
}

func TestParseBookingDates(t *testing.T) {
	start, end, errMsg := parseBookingDates("2026-08-01", "2026-08-04")
	assert.Empty(t, errMsg)
	assert.Equal(t, 3, models.Nights(start, end))

	_, _, errMsg = parseBookingDates("2026-08-01T10:00:00Z", "2026-08-03T10:00:00Z")
	assert.Empty(t, errMsg)

	_, _, errMsg = parseBookingDates("yesterday", "2026-08-04")
	assert.Equal(t, "Invalid start_date", errMsg)

	_, _, errMsg = parseBookingDates("2026-08-04", "2026-08-01")
	assert.Equal(t, "end_date must be after start_date", errMsg)

	_, _, errMsg = parseBookingDates("2026-08-04", "2026-08-04")
	assert.Equal(t, "end_date must be after start_date", errMsg)
}

func TestNormalizeExperience(t *testing.T) {
	assert.Equal(t, models.ExperienceBasic, normalizeExperience("basic"))
	assert.Equal(t, models.ExperienceAdvanced, normalizeExperience("advanced"))
	assert.Equal(t, models.ExperienceNone, normalizeExperience(""))
	assert.Equal(t, models.ExperienceNone, normalizeExperience("expert"))
}
