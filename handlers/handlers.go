// Package handlers exposes the EcoQuest core over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ecoquest/auth"
	"ecoquest/geo"
	"ecoquest/live"
	"ecoquest/models"
	"ecoquest/quest"
	"ecoquest/store"
	"ecoquest/vision"
	"ecoquest/weather"
)

// Handler wires the quest core and the provider boundaries into HTTP
// endpoints.
type Handler struct {
	gate       *auth.Gate
	jwt        *auth.JWTManager
	selector   *quest.Selector
	lifecycle  *quest.Lifecycle
	ledger     *quest.Ledger
	store      *store.Store
	weather    weather.Provider
	classifier vision.Classifier
	geocoder   geo.Geocoder
	hub        *live.Hub
	fallback   string
	log        *zap.Logger
}

// New builds the handler set.
func New(gate *auth.Gate, jwtManager *auth.JWTManager, selector *quest.Selector,
	lifecycle *quest.Lifecycle, ledger *quest.Ledger, st *store.Store,
	weatherProvider weather.Provider, classifier vision.Classifier,
	geocoder geo.Geocoder, hub *live.Hub, fallbackAddress string, log *zap.Logger) *Handler {
	return &Handler{
		gate:       gate,
		jwt:        jwtManager,
		selector:   selector,
		lifecycle:  lifecycle,
		ledger:     ledger,
		store:      st,
		weather:    weatherProvider,
		classifier: classifier,
		geocoder:   geocoder,
		hub:        hub,
		fallback:   fallbackAddress,
		log:        log,
	}
}

// Routes registers every endpoint on the router.
func (h *Handler) Routes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	// Public.
	api.HandleFunc("/auth/register", h.handleRegister).Methods("POST")
	api.HandleFunc("/auth/login", h.handleLogin).Methods("POST")
	api.HandleFunc("/auth/logout", h.handleLogout).Methods("POST")
	api.HandleFunc("/leaderboard", h.handleLeaderboard).Methods("GET")
	api.HandleFunc("/ecoactive", h.handleEcoActive).Methods("GET")
	api.HandleFunc("/ecosight", h.handleEcoSight).Methods("POST")

	// Authenticated users.
	user := api.NewRoute().Subrouter()
	user.Use(h.Authenticate)
	user.HandleFunc("/auth/me", h.handleMe).Methods("GET")
	user.HandleFunc("/missions", h.handleActiveMissions).Methods("GET")
	user.HandleFunc("/submissions", h.handleSubmit).Methods("POST")
	user.HandleFunc("/submissions/mine", h.handleMySubmissions).Methods("GET")

	// Administrators.
	admin := api.NewRoute().Subrouter()
	admin.Use(h.Authenticate, h.RequireAdmin)
	admin.HandleFunc("/submissions", h.handleListSubmissions).Methods("GET")
	admin.HandleFunc("/submissions/{id}/approve", h.handleApprove).Methods("POST")
	admin.HandleFunc("/submissions/{id}/reject", h.handleReject).Methods("POST")
	admin.HandleFunc("/users", h.handleListUsers).Methods("GET")
	admin.HandleFunc("/users/{username}/reset", h.handleResetPoints).Methods("POST")
	admin.HandleFunc("/users/{username}", h.handleDeleteUser).Methods("DELETE")

	r.HandleFunc("/ws", h.hub.ServeWS)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("encode response", zap.Error(err))
	}
}

// respondError maps the core error taxonomy onto HTTP status codes.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrAuthentication):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrInvalidState):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}

	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.ErrValidation
	}
	return nil
}
