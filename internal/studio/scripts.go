package studio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type ScriptService struct {
	db *pgxpool.Pool
}

func NewScriptService(db *pgxpool.Pool) *ScriptService {
	return &ScriptService{db: db}
}

type CreateScriptRequest struct {
	Title string              `json:"title"`
	Hook  string              `json:"hook"`
	Steps []models.ScriptStep `json:"steps"`
}

func (s *ScriptService) Create(ctx context.Context, req CreateScriptRequest) (*models.Script, error) {
	steps := req.Steps
	if steps == nil {
		steps = []models.ScriptStep{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("marshal steps: %w", err)
	}

	var sc models.Script
	err = s.db.QueryRow(ctx,
		`INSERT INTO scripts (title, hook, steps)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, hook, steps, status, created_at, updated_at`,
		req.Title, req.Hook, stepsJSON,
	).Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Steps, &sc.Status, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert script: %w", err)
	}
	return &sc, nil
}

func (s *ScriptService) GetByID(ctx context.Context, id uuid.UUID) (*models.Script, error) {
	var sc models.Script
	err := s.db.QueryRow(ctx,
		`SELECT id, title, hook, steps, status, created_at, updated_at
		 FROM scripts WHERE id = $1`,
		id,
	).Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Steps, &sc.Status, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &sc, nil
}

func (s *ScriptService) List(ctx context.Context, limit, offset int) ([]models.Script, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, hook, steps, status, created_at, updated_at
		 FROM scripts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	defer rows.Close()

	var scripts []models.Script
	for rows.Next() {
		var sc models.Script
		if err := rows.Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Steps, &sc.Status, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan script: %w", err)
		}
		scripts = append(scripts, sc)
	}
	return scripts, nil
}

type UpdateScriptRequest struct {
	Title  *string              `json:"title,omitempty"`
	Hook   *string              `json:"hook,omitempty"`
	Steps  *[]models.ScriptStep `json:"steps,omitempty"`
	Status *string              `json:"status,omitempty"`
}

func (s *ScriptService) Update(ctx context.Context, id uuid.UUID, req UpdateScriptRequest) (*models.Script, error) {
	set := "updated_at = now()"
	args := []interface{}{id}
	argIdx := 2

	if req.Title != nil {
		set += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Hook != nil {
		set += fmt.Sprintf(", hook = $%d", argIdx)
		args = append(args, *req.Hook)
		argIdx++
	}
	if req.Steps != nil {
		stepsJSON, err := json.Marshal(*req.Steps)
		if err != nil {
			return nil, fmt.Errorf("marshal steps: %w", err)
		}
		set += fmt.Sprintf(", steps = $%d", argIdx)
		args = append(args, stepsJSON)
		argIdx++
	}
	if req.Status != nil {
		set += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *req.Status)
		argIdx++
	}

	var sc models.Script
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE scripts SET %s WHERE id = $1
		 RETURNING id, title, hook, steps, status, created_at, updated_at`, set),
		args...,
	).Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Steps, &sc.Status, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &sc, nil
}

func (s *ScriptService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM scripts WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete script: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
