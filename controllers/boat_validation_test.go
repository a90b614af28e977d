// File: /controllers/boat_validation_test.go
package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sailshare-api/models"
)

func validBoatRequest() BoatRequest {
	return BoatRequest{
		Name:          "Beneteau Oceanis 38",
		RentalTypes:   []string{models.RentalTypeBoatOnly},
		BoatType:      "sailboat",
		Brand:         "Beneteau",
		Model:         "Oceanis 38",
		BuildYear:     2018,
		Capacity:      8,
		EnginePower:   40,
		Length:        11.5,
		ContactNumber: "+34 600 123 456",
		City:          "Palma",
		Description:   "Well kept cruiser, ready for day trips around the bay.",
		Price:         250,
		PriceUnit:     models.PriceUnitDay,
		Photos:        []string{"https://cdn.example.com/boats/oceanis.jpg"},
		Latitude:      39.57,
		Longitude:     2.65,
	}
}

func TestValidateBoatRequestAccepted(t *testing.T) {
	req := validBoatRequest()
	assert.Empty(t, validateBoatRequest(&req))
}

func TestValidateBoatRequestMissingFields(t *testing.T) {
	req := validBoatRequest()
	req.Name = "   "
	assert.Equal(t, "Missing required field: name", validateBoatRequest(&req))

	req = validBoatRequest()
	req.City = ""
	assert.Equal(t, "Missing required field: city", validateBoatRequest(&req))
}

func TestValidateBoatRequestRentalTypes(t *testing.T) {
	req := validBoatRequest()
	req.RentalTypes = nil
	assert.Equal(t, "Select at least one rental type", validateBoatRequest(&req))

	req = validBoatRequest()
	req.RentalTypes = []string{"crewed"}
	assert.Equal(t, "Invalid rental type: crewed", validateBoatRequest(&req))
}

func TestValidateBoatRequestPriceUnit(t *testing.T) {
	req := validBoatRequest()
	req.PriceUnit = "month"
	assert.Equal(t, "Invalid price_unit (day|week)", validateBoatRequest(&req))

	req.PriceUnit = models.PriceUnitWeek
	assert.Empty(t, validateBoatRequest(&req))
}

func TestValidateBoatRequestPhotos(t *testing.T) {
	req := validBoatRequest()
	req.Photos = nil
	assert.Equal(t, "At least one photo is required", validateBoatRequest(&req))
}

func TestValidateBoatRequestNumerics(t *testing.T) {
	req := validBoatRequest()
	req.BuildYear = 1850
	assert.Equal(t, "Invalid build year", validateBoatRequest(&req))

	req = validBoatRequest()
	req.Capacity = 0
	assert.Equal(t, "Invalid or non-positive numeric field: capacity", validateBoatRequest(&req))

	req = validBoatRequest()
	req.Price = -10
	assert.Equal(t, "Invalid or non-positive numeric field: price", validateBoatRequest(&req))
}

func TestValidateBoatRequestContactAndCoordinates(t *testing.T) {
	req := validBoatRequest()
	req.ContactNumber = "nope"
	assert.Equal(t, "Invalid contact number", validateBoatRequest(&req))

	req = validBoatRequest()
	req.Latitude = 91
	assert.Equal(t, "Latitude must be between -90 and 90", validateBoatRequest(&req))

	req = validBoatRequest()
	req.Longitude = -200
	assert.Equal(t, "Longitude must be between -180 and 180", validateBoatRequest(&req))
}
