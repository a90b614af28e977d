// File: /models/boat_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoatSubmitAndReviewStates(t *testing.T) {
	boat := Boat{Status: BoatStatusDraft}
	assert.True(t, boat.CanSubmit())
	assert.False(t, boat.CanReview())

	boat.Status = BoatStatusPendingReview
	assert.False(t, boat.CanSubmit())
	assert.True(t, boat.CanReview())

	// Rejected listings can go back into the queue
	boat.Status = BoatStatusRejected
	assert.True(t, boat.CanSubmit())
	assert.False(t, boat.CanReview())

	// Approved is terminal
	boat.Status = BoatStatusApproved
	assert.False(t, boat.CanSubmit())
	assert.False(t, boat.CanReview())
}

func TestBoatIsPubliclyVisible(t *testing.T) {
	boat := Boat{Status: BoatStatusApproved, IsActive: true}
	assert.True(t, boat.IsPubliclyVisible())

	boat.IsActive = false
	assert.False(t, boat.IsPubliclyVisible())

	boat.IsActive = true
	boat.Status = BoatStatusPendingReview
	assert.False(t, boat.IsPubliclyVisible())
}

func TestBoatOffersRentalType(t *testing.T) {
	boat := Boat{RentalTypes: StringSliceType{RentalTypeBoatOnly, RentalTypeWithCaptain}}
	assert.True(t, boat.OffersRentalType(RentalTypeBoatOnly))
	assert.True(t, boat.OffersRentalType(RentalTypeWithCaptain))
	assert.False(t, boat.OffersRentalType(RentalTypeOwnerOnboard))

	// No declared types accepts any
	boat.RentalTypes = nil
	assert.True(t, boat.OffersRentalType(RentalTypeOwnerOnboard))
}

func TestIsValidRentalType(t *testing.T) {
	assert.True(t, IsValidRentalType(RentalTypeBoatOnly))
	assert.True(t, IsValidRentalType(RentalTypeWithCaptain))
	assert.True(t, IsValidRentalType(RentalTypeOwnerOnboard))
	assert.False(t, IsValidRentalType("crewed"))
	assert.False(t, IsValidRentalType(""))
}

func TestSyncLocation(t *testing.T) {
	boat := Boat{Latitude: 39.57, Longitude: 2.65}
	boat.SyncLocation()
	assert.Equal(t, 39.57, boat.LocationLat)
	assert.Equal(t, 2.65, boat.LocationLng)
}
