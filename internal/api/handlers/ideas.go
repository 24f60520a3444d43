package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ismaelloveexcel/creatorstudio/internal/embedding"
	"github.com/ismaelloveexcel/creatorstudio/internal/models"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
	"github.com/ismaelloveexcel/creatorstudio/internal/vectorstore"
)

type IdeaHandler struct {
	svc      *studio.IdeaService
	guard    *Guard
	queue    *queue.Client
	embedder *embedding.Service
	vectors  *vectorstore.IdeaStore
}

func NewIdeaHandler(svc *studio.IdeaService, guard *Guard, qc *queue.Client, embedder *embedding.Service, vectors *vectorstore.IdeaStore) *IdeaHandler {
	return &IdeaHandler{svc: svc, guard: guard, queue: qc, embedder: embedder, vectors: vectors}
}

func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studio.CreateIdeaRequest
	if !h.guard.DecodeChecked(w, r, "idea", &req) {
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}

	idea, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.enqueueEmbed(idea.ID)

	writeJSON(w, http.StatusCreated, idea)
}

func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}
	category := r.URL.Query().Get("category")

	ideas, err := h.svc.List(r.Context(), category, limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ideas": ideas, "count": len(ideas)})
}

func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid idea ID"})
		return
	}

	idea, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "idea")
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid idea ID"})
		return
	}

	var req studio.UpdateIdeaRequest
	if !h.guard.DecodeChecked(w, r, "idea", &req) {
		return
	}

	idea, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeNotFoundOr500(w, err, "idea")
		return
	}

	if req.Title != nil || req.Description != nil {
		h.enqueueEmbed(idea.ID)
	}

	writeJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid idea ID"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "idea not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Similar returns the stored ideas closest to this one by embedding
// distance. When no embedding provider is configured the endpoint still
// works, it just has nothing to rank with and says so.
func (h *IdeaHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid idea ID"})
		return
	}

	if h.embedder == nil || !h.embedder.Enabled() {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matches": []models.IdeaMatch{},
			"enabled": false,
		})
		return
	}

	if _, err := h.svc.GetByID(r.Context(), id); err != nil {
		writeNotFoundOr500(w, err, "idea")
		return
	}

	topK, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if topK <= 0 {
		topK = 5
	}

	vec, err := h.vectors.Get(r.Context(), id)
	if err != nil {
		// Not embedded yet, likely still in the queue.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matches": []models.IdeaMatch{},
			"enabled": true,
		})
		return
	}

	matches, err := h.vectors.Similar(r.Context(), vec, id, topK)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if matches == nil {
		matches = []models.IdeaMatch{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches, "enabled": true})
}

func (h *IdeaHandler) enqueueEmbed(id uuid.UUID) {
	if h.queue == nil || h.embedder == nil || !h.embedder.Enabled() {
		return
	}
	if err := h.queue.EnqueueIdeaEmbed(queue.IdeaEmbedPayload{IdeaID: id.String()}); err != nil {
		slog.Error("failed to enqueue idea embed", "idea_id", id, "error", err)
	}
}
