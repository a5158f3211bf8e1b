package handlers

import (
	"net/http"

	"ecoquest/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	AsAdmin  bool   `json:"as_admin"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var profile auth.RegisterProfile
	if err := decodeBody(r, &profile); err != nil {
		h.respondError(w, err)
		return
	}

	user, token, err := h.gate.Register(profile)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, token, err := h.gate.Login(req.Username, req.Password, req.AsAdmin)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

// handleLogout exists for client symmetry: sessions are stateless tokens,
// so logging out is dropping the token.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	user, err := h.gate.Resume(claims.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}
