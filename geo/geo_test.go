package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/models"
)

func TestAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"display_name": "Jalan Sudirman, Jakarta, Indonesia"}`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, time.Second)
	addr, err := g.Address(context.Background(), -6.2088, 106.8456)
	require.NoError(t, err)
	assert.Equal(t, "Jalan Sudirman, Jakarta, Indonesia", addr)
}

func TestAddressDegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, time.Second)
	_, err := g.Address(context.Background(), 1, 2)
	assert.ErrorIs(t, err, models.ErrExternalUnavailable)
}

func TestAddressEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := NewNominatim(srv.URL, time.Second)
	_, err := g.Address(context.Background(), 1, 2)
	assert.ErrorIs(t, err, models.ErrExternalUnavailable)
}

func TestAddressUnreachable(t *testing.T) {
	g := NewNominatim("http://127.0.0.1:1", 100*time.Millisecond)
	_, err := g.Address(context.Background(), 1, 2)
	assert.ErrorIs(t, err, models.ErrExternalUnavailable)
}
