package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecoquest/models"
)

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := models.SubmissionStatus(r.URL.Query().Get("status"))

	subs, err := h.store.ListSubmissions(status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	h.respondJSON(w, http.StatusOK, subs)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	sub, err := h.lifecycle.Approve(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, sub)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	sub, err := h.lifecycle.Reject(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, sub)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		h.respondError(w, err)
		return
	}
	if users == nil {
		users = []models.UserAccount{}
	}

	h.respondJSON(w, http.StatusOK, users)
}

func (h *Handler) handleResetPoints(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := h.ledger.ResetPoints(username); err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast("leaderboard-update", nil)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": username + "'s points have been reset"})
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := h.ledger.DeleteAccount(username); err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast("leaderboard-update", nil)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": username + " has been deleted"})
}
