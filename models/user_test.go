// File: /models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSubmitLicense(t *testing.T) {
	user := User{LicenseStatus: LicenseStatusNone}
	assert.True(t, user.CanSubmitLicense())

	// Rejection unlocks a new attempt
	user.LicenseStatus = LicenseStatusRejected
	assert.True(t, user.CanSubmitLicense())

	user.LicenseStatus = LicenseStatusPending
	assert.False(t, user.CanSubmitLicense())

	user.LicenseStatus = LicenseStatusApproved
	assert.False(t, user.CanSubmitLicense())
}

func TestIsOAuth(t *testing.T) {
	user := User{}
	assert.False(t, user.IsOAuth())

	googleID := "google-123"
	user.GoogleID = &googleID
	assert.True(t, user.IsOAuth())

	facebookID := "fb-456"
	user = User{FacebookID: &facebookID}
	assert.True(t, user.IsOAuth())
}

func TestHasCompleteProfile(t *testing.T) {
	user := User{FirstName: "Marta", LastName: "Serra", Phone: "+34 600 123 456"}
	assert.True(t, user.HasCompleteProfile())

	user.Phone = ""
	assert.False(t, user.HasCompleteProfile())
}
