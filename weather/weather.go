// Package weather provides the mocked weather source and the
// weather-based activity recommender. No real forecast API is called; a
// production deployment would plug a real Provider in here.
package weather

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Observation is a point-in-time weather reading.
type Observation struct {
	Temperature   int    `json:"temperature"`    // Celsius
	Humidity      int    `json:"humidity"`       // percent
	Condition     string `json:"condition"`
	WindSpeed     int    `json:"wind_speed"`     // km/h
	WindDirection string `json:"wind_direction"`
	CloudCover    int    `json:"cloud_cover"`    // percent
	Visibility    string `json:"visibility"`
}

// Provider returns current weather for a coordinate pair.
type Provider interface {
	Current(ctx context.Context, lat, lng float64) (Observation, error)
}

var conditions = []string{
	"Cerah",
	"Cerah Berawan",
	"Berawan",
	"Hujan Ringan",
	"Hujan Lebat",
}

var windDirections = []string{"Utara", "Timur", "Selatan", "Barat"}

// MockProvider generates random observations in the same ranges the demo
// site used.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider creates a mock provider with the given seed.
func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

// Current returns a random in-range observation. The coordinates are
// ignored; a real provider would use them.
func (p *MockProvider) Current(_ context.Context, _, _ float64) (Observation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Observation{
		Temperature:   p.rng.Intn(15) + 20,
		Humidity:      p.rng.Intn(50) + 30,
		Condition:     conditions[p.rng.Intn(len(conditions))],
		WindSpeed:     p.rng.Intn(20) + 5,
		WindDirection: windDirections[p.rng.Intn(len(windDirections))],
		CloudCover:    p.rng.Intn(100),
		Visibility:    fmt.Sprintf("%.1f km", p.rng.Float64()*10),
	}, nil
}

var descriptions = map[string]string{
	"Cerah":         "It's a beautiful sunny day with clear skies. Perfect for outdoor activities!",
	"Cerah Berawan": "Partly cloudy skies with occasional sunshine. Great weather for being outside.",
	"Berawan":       "Cloudy skies today. The clouds might make it feel slightly cooler.",
	"Berawan Tebal": "Thick cloud cover today. It might feel a bit gloomy but no rain expected.",
	"Hujan Ringan":  "Light rain falling. Don't forget your umbrella if going outside!",
	"Hujan Sedang":  "Moderate rainfall. Consider indoor activities or wear proper rain gear.",
	"Hujan Lebat":   "Heavy rainfall expected. Be cautious if traveling and stay dry!",
	"Hujan Lokal":   "Localized showers in the area. The rain might be intermittent.",
	"Hujan Petir":   "Thunderstorms likely. Stay indoors if possible during the storm.",
}

// Describe renders a human summary for a condition and temperature.
func Describe(condition string, temperature int) string {
	desc, ok := descriptions[condition]
	if !ok {
		desc = "Typical weather conditions today."
	}

	var tempComment string
	switch {
	case temperature > 30:
		tempComment = " It feels quite hot today."
	case temperature > 25:
		tempComment = " Temperatures are warm."
	case temperature > 20:
		tempComment = " Temperatures are pleasant."
	default:
		tempComment = " It feels a bit cool today."
	}

	return desc + tempComment
}
