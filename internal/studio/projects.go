package studio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type ProjectService struct {
	db *pgxpool.Pool
}

func NewProjectService(db *pgxpool.Pool) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Title        string      `json:"title"`
	RecordingIDs []uuid.UUID `json:"recording_ids"`
}

func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*models.VideoProject, error) {
	ids := req.RecordingIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}

	var p models.VideoProject
	err := s.db.QueryRow(ctx,
		`INSERT INTO video_projects (title, recording_ids)
		 VALUES ($1, $2)
		 RETURNING id, title, recording_ids, status, created_at, updated_at`,
		req.Title, ids,
	).Scan(&p.ID, &p.Title, &p.RecordingIDs, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.VideoProject, error) {
	var p models.VideoProject
	err := s.db.QueryRow(ctx,
		`SELECT id, title, recording_ids, status, created_at, updated_at
		 FROM video_projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.RecordingIDs, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *ProjectService) List(ctx context.Context, limit, offset int) ([]models.VideoProject, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, recording_ids, status, created_at, updated_at
		 FROM video_projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.VideoProject
	for rows.Next() {
		var p models.VideoProject
		if err := rows.Scan(&p.ID, &p.Title, &p.RecordingIDs, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

type UpdateProjectRequest struct {
	Title        *string      `json:"title,omitempty"`
	RecordingIDs *[]uuid.UUID `json:"recording_ids,omitempty"`
	Status       *string      `json:"status,omitempty"`
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*models.VideoProject, error) {
	set := "updated_at = now()"
	args := []interface{}{id}
	argIdx := 2

	if req.Title != nil {
		set += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *req.Title)
		argIdx++
	}
	if req.RecordingIDs != nil {
		set += fmt.Sprintf(", recording_ids = $%d", argIdx)
		args = append(args, *req.RecordingIDs)
		argIdx++
	}
	if req.Status != nil {
		set += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *req.Status)
		argIdx++
	}

	var p models.VideoProject
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE video_projects SET %s WHERE id = $1
		 RETURNING id, title, recording_ids, status, created_at, updated_at`, set),
		args...,
	).Scan(&p.ID, &p.Title, &p.RecordingIDs, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// SetStatus is used by the export worker to advance a project through
// draft -> exporting -> exported.
func (s *ProjectService) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE video_projects SET status = $2, updated_at = now() WHERE id = $1",
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM video_projects WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
