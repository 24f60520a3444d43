package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ismaelloveexcel/creatorstudio/internal/audit"
	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type AdminHandler struct {
	audit *audit.Service
}

func NewAdminHandler(a *audit.Service) *AdminHandler {
	return &AdminHandler{audit: a}
}

// ModerationEvents lists rejected writes for review. Filterable by resource
// type and date range.
func (h *AdminHandler) ModerationEvents(w http.ResponseWriter, r *http.Request) {
	q := audit.Query{
		ResourceType: r.URL.Query().Get("resource_type"),
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	q.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
			return
		}
		q.StartDate = &t
	}
	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
			return
		}
		q.EndDate = &t
	}

	events, err := h.audit.ListEvents(r.Context(), q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if events == nil {
		events = []models.ModerationEvent{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events, "count": len(events)})
}
