package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
)

type ProjectHandler struct {
	svc   *studio.ProjectService
	guard *Guard
	queue *queue.Client
}

func NewProjectHandler(svc *studio.ProjectService, guard *Guard, qc *queue.Client) *ProjectHandler {
	return &ProjectHandler{svc: svc, guard: guard, queue: qc}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studio.CreateProjectRequest
	if !h.guard.DecodeChecked(w, r, "project", &req) {
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}

	project, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	projects, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects, "count": len(projects)})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid project ID"})
		return
	}

	project, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid project ID"})
		return
	}

	var req studio.UpdateProjectRequest
	if !h.guard.DecodeChecked(w, r, "project", &req) {
		return
	}

	project, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeNotFoundOr500(w, err, "project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid project ID"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "project not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export queues the project for rendering. The response returns immediately
// with the exporting status; clients poll Get for completion.
func (h *ProjectHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid project ID"})
		return
	}

	project, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "project")
		return
	}

	if project.Status == models.ProjectStatusExporting {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "export already in progress"})
		return
	}
	if len(project.RecordingIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "project has no recordings"})
		return
	}

	if h.queue == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "export queue unavailable"})
		return
	}

	if err := h.queue.EnqueueProjectExport(queue.ProjectExportPayload{ProjectID: id.String()}); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"id":     id,
		"status": models.ProjectStatusExporting,
	})
}
