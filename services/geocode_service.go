// File: /services/geocode_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrGeocodeNotConfigured is returned when no Geoapify key is set.
var ErrGeocodeNotConfigured = errors.New("geocoding provider not configured")

// GeocodeService proxies address autocomplete and reverse geocoding requests
// to Geoapify so the API key never reaches the client.
type GeocodeService struct {
	apiKey string
	client *http.Client
}

func NewGeocodeService(apiKey string) *GeocodeService {
	return &GeocodeService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ProviderError carries the upstream status so handlers can surface it.
type ProviderError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("geocoding provider returned status %d", e.StatusCode)
}

// ReverseResult is the normalized reverse-geocoding answer.
type ReverseResult struct {
	Street   string  `json:"street,omitempty"`
	City     string  `json:"city,omitempty"`
	State    string  `json:"state,omitempty"`
	Country  string  `json:"country,omitempty"`
	Postcode string  `json:"postcode,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

func (gs *GeocodeService) get(endpoint string, params url.Values) (json.RawMessage, error) {
	if gs.apiKey == "" {
		return nil, ErrGeocodeNotConfigured
	}

	params.Set("apiKey", gs.apiKey)
	requestURL := fmt.Sprintf("https://api.geoapify.com/v1/geocode/%s?%s", endpoint, params.Encode())

	resp, err := gs.client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

// Autocomplete forwards an address autocomplete query. Optional limit, lang
// and filter parameters are passed through when non-empty.
func (gs *GeocodeService) Autocomplete(text, limit, lang, filter string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("text", text)
	if limit != "" {
		params.Set("limit", limit)
	}
	if lang != "" {
		params.Set("lang", lang)
	}
	if filter != "" {
		params.Set("filter", filter)
	}

	return gs.get("autocomplete", params)
}

// Reverse resolves a lat/lon pair into a normalized address.
func (gs *GeocodeService) Reverse(lat, lon float64, lang string) (string, *ReverseResult, json.RawMessage, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%g", lat))
	params.Set("lon", fmt.Sprintf("%g", lon))
	params.Set("lang", lang)

	raw, err := gs.get("reverse", params)
	if err != nil {
		return "", nil, nil, err
	}

	// Take the first feature if present
	var parsed struct {
		Features []struct {
			Properties struct {
				Formatted    string `json:"formatted"`
				AddressLine1 string `json:"address_line1"`
				AddressLine2 string `json:"address_line2"`
				Street       string `json:"street"`
				City         string `json:"city"`
				Town         string `json:"town"`
				Village      string `json:"village"`
				State        string `json:"state"`
				Country      string `json:"country"`
				Postcode     string `json:"postcode"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", nil, raw, fmt.Errorf("failed to parse geocoding response: %w", err)
	}

	result := &ReverseResult{Lat: lat, Lon: lon}
	formatted := ""
	if len(parsed.Features) > 0 {
		props := parsed.Features[0].Properties

		formatted = props.Formatted
		if formatted == "" {
			formatted = props.AddressLine1
		}

		result.Street = props.Street
		if result.Street == "" {
			result.Street = props.AddressLine2
		}
		result.City = props.City
		if result.City == "" {
			result.City = props.Town
		}
		if result.City == "" {
			result.City = props.Village
		}
		result.State = props.State
		result.Country = props.Country
		result.Postcode = props.Postcode
	}

	return formatted, result, raw, nil
}
