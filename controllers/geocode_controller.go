// File: /controllers/geocode_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sailshare-api/services"
	"sailshare-api/utils"
)

type GeocodeController struct {
	geocodeService *services.GeocodeService
}

func NewGeocodeController(geocodeService *services.GeocodeService) *GeocodeController {
	return &GeocodeController{geocodeService: geocodeService}
}

func sendGeocodeError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrGeocodeNotConfigured) {
		utils.SendError(c, http.StatusServiceUnavailable, "Geocoding is not configured")
		return
	}

	var providerErr *services.ProviderError
	if errors.As(err, &providerErr) {
		utils.SendError(c, http.StatusBadGateway, "Geocoding provider error")
		return
	}

	utils.SendError(c, http.StatusBadGateway, "Geocoding request failed")
}

// Autocomplete proxies address suggestions.
// GET /api/geocode/autocomplete?text=&limit=&lang=&filter=
func (gc *GeocodeController) Autocomplete(c *gin.Context) {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		utils.SendError(c, http.StatusBadRequest, "text is required")
		return
	}

	raw, err := gc.geocodeService.Autocomplete(text, c.Query("limit"), c.Query("lang"), c.Query("filter"))
	if err != nil {
		sendGeocodeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// Reverse resolves a lat/lon pair into an address.
// GET /api/geocode/reverse?lat=&lon=&lang=
func (gc *GeocodeController) Reverse(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.SendError(c, http.StatusBadRequest, "lat and lon are required numeric parameters")
		return
	}

	if !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lon) {
		utils.SendError(c, http.StatusBadRequest, "Coordinates out of range")
		return
	}

	lang := c.DefaultQuery("lang", "en")
	formatted, result, _, err := gc.geocodeService.Reverse(lat, lon, lang)
	if err != nil {
		sendGeocodeError(c, err)
		return
	}

	utils.SendSuccess(c, "Address resolved", gin.H{
		"formatted": formatted,
		"address":   result,
	})
}
