package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
)

type RecordingHandler struct {
	svc   *studio.RecordingService
	guard *Guard
}

func NewRecordingHandler(svc *studio.RecordingService, guard *Guard) *RecordingHandler {
	return &RecordingHandler{svc: svc, guard: guard}
}

func (h *RecordingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studio.CreateRecordingRequest
	if !h.guard.DecodeChecked(w, r, "recording", &req) {
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}

	rec, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *RecordingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	recs, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recordings": recs, "count": len(recs)})
}

func (h *RecordingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid recording ID"})
		return
	}

	rec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "recording")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid recording ID"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "recording not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
