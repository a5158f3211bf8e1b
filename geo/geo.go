// Package geo is the reverse-geocoding boundary. Lookups are best effort:
// callers substitute a fallback label when the provider is unavailable.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ecoquest/models"
)

// DefaultCoordinates is used when a caller supplies no position.
var DefaultCoordinates = models.Location{Lat: -6.2088, Lng: 106.8456} // Jakarta

// Nominatim's usage policy rejects requests without an identifying
// User-Agent.
const userAgent = "ecoquest/1.0"

// Geocoder resolves coordinates to a display address.
type Geocoder interface {
	Address(ctx context.Context, lat, lng float64) (string, error)
}

// Nominatim queries the OpenStreetMap Nominatim reverse endpoint.
type Nominatim struct {
	baseURL string
	client  *http.Client
}

// NewNominatim builds a client for the given base URL.
func NewNominatim(baseURL string, timeout time.Duration) *Nominatim {
	return &Nominatim{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Address reverse-geocodes a coordinate pair. Failures wrap
// ErrExternalUnavailable so callers can degrade instead of propagating.
func (n *Nominatim) Address(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		n.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lng)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %v: %w", err, models.ErrExternalUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: status %d: %w", resp.StatusCode, models.ErrExternalUnavailable)
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("reverse geocode: decode: %v: %w", err, models.ErrExternalUnavailable)
	}
	if payload.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode: empty result: %w", models.ErrExternalUnavailable)
	}

	return payload.DisplayName, nil
}
