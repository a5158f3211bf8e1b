package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"ecoquest/geo"
	"ecoquest/weather"
)

// handleEcoActive returns a weather snapshot with activity
// recommendations. Coordinates default to the configured fallback city
// and a failed address lookup degrades to the fallback label.
func (h *Handler) handleEcoActive(w http.ResponseWriter, r *http.Request) {
	lat, lng := geo.DefaultCoordinates.Lat, geo.DefaultCoordinates.Lng
	if v, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64); err == nil {
		lat = v
	}
	if v, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64); err == nil {
		lng = v
	}

	obs, err := h.weather.Current(r.Context(), lat, lng)
	if err != nil {
		h.respondError(w, err)
		return
	}

	address, err := h.geocoder.Address(r.Context(), lat, lng)
	if err != nil {
		h.log.Warn("reverse geocode unavailable", zap.Error(err))
		address = h.fallback
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"location": map[string]interface{}{
			"lat":     lat,
			"lng":     lng,
			"address": address,
		},
		"weather":     obs,
		"description": weather.Describe(obs.Condition, obs.Temperature),
		"activities":  weather.Recommend(obs.Condition),
	})
}

// handleEcoSight runs the mocked waste classifier over an uploaded image
// name.
func (h *Handler) handleEcoSight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageName string `json:"image_name"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	predictions, err := h.classifier.Classify(r.Context(), req.ImageName)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": predictions,
	})
}
