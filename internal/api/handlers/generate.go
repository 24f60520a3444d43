package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ismaelloveexcel/creatorstudio/internal/aigen"
)

type GenerateHandler struct {
	svc *aigen.Service
}

func NewGenerateHandler(svc *aigen.Service) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

type topicRequest struct {
	Topic string `json:"topic"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

func (h *GenerateHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

func (h *GenerateHandler) Description(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "topic required"})
		return
	}

	description, err := h.svc.GenerateDescription(r.Context(), req.Topic)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"description": description})
}

func (h *GenerateHandler) Tags(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "topic required"})
		return
	}

	tags, err := h.svc.GenerateTags(r.Context(), req.Topic)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

func (h *GenerateHandler) Thumbnails(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "topic required"})
		return
	}

	ideas, err := h.svc.GenerateThumbnailIdeas(r.Context(), req.Topic)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ideas": ideas})
}

func (h *GenerateHandler) Ideas(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category required"})
		return
	}

	ideas, err := h.svc.GenerateContentIdeas(r.Context(), req.Category)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ideas": ideas})
}
