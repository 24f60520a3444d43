package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
)

// ExportWorker walks a video project through the export pipeline. The actual
// rendering happens out of process; this worker tracks the status transitions
// so the UI can poll for completion.
type ExportWorker struct {
	projects *studio.ProjectService
}

func NewExportWorker(projects *studio.ProjectService) *ExportWorker {
	return &ExportWorker{projects: projects}
}

func (w *ExportWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.ProjectExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	projectID, err := uuid.Parse(payload.ProjectID)
	if err != nil {
		return fmt.Errorf("parse project ID: %w", err)
	}

	project, err := w.projects.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	if project.Status == models.ProjectStatusExported {
		slog.Info("project already exported", "project_id", projectID)
		return nil
	}

	if err := w.projects.SetStatus(ctx, projectID, models.ProjectStatusExporting); err != nil {
		return fmt.Errorf("mark exporting: %w", err)
	}

	slog.Info("exporting project", "project_id", projectID, "recordings", len(project.RecordingIDs))

	// Placeholder for the render step. Recordings are concatenated in order
	// by an external encoder keyed on the project ID.
	select {
	case <-ctx.Done():
		w.projects.SetStatus(context.Background(), projectID, models.ProjectStatusDraft)
		return ctx.Err()
	case <-time.After(time.Second):
	}

	if err := w.projects.SetStatus(ctx, projectID, models.ProjectStatusExported); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}

	slog.Info("project exported", "project_id", projectID)
	return nil
}
