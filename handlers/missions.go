package handlers

import (
	"net/http"
	"time"

	"ecoquest/models"
)

// missionView decorates a mission with the caller's progress on it.
type missionView struct {
	models.Mission
	Completed bool `json:"completed"`
	Pending   bool `json:"pending"`
}

func (h *Handler) handleActiveMissions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	missions, err := h.selector.ActiveMissions(time.Now())
	if err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.gate.Resume(claims.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}

	subs, err := h.store.ListUserSubmissions(claims.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	approved := make(map[int]bool)
	for _, s := range subs {
		if s.Status == models.StatusApproved {
			approved[s.MissionID] = true
		}
	}
	pending := make(map[int]bool)
	for _, id := range user.PendingApprovals {
		pending[id] = true
	}

	views := make([]missionView, 0, len(missions))
	for _, m := range missions {
		views = append(views, missionView{
			Mission:   m,
			Completed: approved[m.ID],
			Pending:   pending[m.ID] && !approved[m.ID],
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"missions": views,
		"user":     user,
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req struct {
		MissionID     int              `json:"mission_id"`
		Location      *models.Location `json:"location"`
		ProofLink     string           `json:"proof_link"`
		Description   string           `json:"description"`
		AgreedToTerms bool             `json:"agreed_to_terms"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	draft := h.lifecycle.StartSubmission(claims.Username, req.MissionID, req.Location)
	draft.ProofLink = req.ProofLink
	draft.Description = req.Description
	draft.AgreedToTerms = req.AgreedToTerms

	sub, err := h.lifecycle.Submit(draft)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, sub)
}

func (h *Handler) handleMySubmissions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	subs, err := h.store.ListUserSubmissions(claims.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	h.respondJSON(w, http.StatusOK, subs)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, recent, err := h.ledger.Leaderboard(r.URL.Query().Get("filter"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if recent == nil {
		recent = []models.Submission{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"leaderboard": entries,
		"recent":      recent,
	})
}
