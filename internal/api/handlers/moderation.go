package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ismaelloveexcel/creatorstudio/internal/moderation"
)

// ModerationHandler exposes the filter directly so the frontend can give
// live feedback while the creator types, before anything is submitted.
type ModerationHandler struct {
	filter *moderation.Filter
}

func NewModerationHandler(filter *moderation.Filter) *ModerationHandler {
	return &ModerationHandler{filter: filter}
}

type moderationCheckRequest struct {
	Text  string   `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

func (h *ModerationHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req moderationCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Texts != nil {
		writeJSON(w, http.StatusOK, h.filter.CheckTexts(req.Texts))
		return
	}

	writeJSON(w, http.StatusOK, h.filter.CheckText(req.Text))
}
