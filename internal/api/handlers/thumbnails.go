package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
)

type ThumbnailHandler struct {
	svc   *studio.ThumbnailService
	guard *Guard
}

func NewThumbnailHandler(svc *studio.ThumbnailService, guard *Guard) *ThumbnailHandler {
	return &ThumbnailHandler{svc: svc, guard: guard}
}

func (h *ThumbnailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studio.CreateThumbnailRequest
	if !h.guard.DecodeChecked(w, r, "thumbnail", &req) {
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}

	thumb, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, thumb)
}

func (h *ThumbnailHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	thumbs, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"thumbnails": thumbs, "count": len(thumbs)})
}

func (h *ThumbnailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thumbnail ID"})
		return
	}

	thumb, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "thumbnail")
		return
	}

	writeJSON(w, http.StatusOK, thumb)
}

func (h *ThumbnailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thumbnail ID"})
		return
	}

	var req studio.UpdateThumbnailRequest
	if !h.guard.DecodeChecked(w, r, "thumbnail", &req) {
		return
	}

	thumb, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeNotFoundOr500(w, err, "thumbnail")
		return
	}

	writeJSON(w, http.StatusOK, thumb)
}

func (h *ThumbnailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thumbnail ID"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "thumbnail not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
