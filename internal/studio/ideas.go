package studio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type IdeaService struct {
	db *pgxpool.Pool
}

func NewIdeaService(db *pgxpool.Pool) *IdeaService {
	return &IdeaService{db: db}
}

type CreateIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (s *IdeaService) Create(ctx context.Context, req CreateIdeaRequest) (*models.Idea, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var idea models.Idea
	err := s.db.QueryRow(ctx,
		`INSERT INTO ideas (title, description, category, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, description, category, tags, favorite, created_at, updated_at`,
		req.Title, req.Description, req.Category, tags,
	).Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Category, &idea.Tags, &idea.Favorite, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert idea: %w", err)
	}
	return &idea, nil
}

func (s *IdeaService) GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := s.db.QueryRow(ctx,
		`SELECT id, title, description, category, tags, favorite, created_at, updated_at
		 FROM ideas WHERE id = $1`,
		id,
	).Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Category, &idea.Tags, &idea.Favorite, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &idea, nil
}

func (s *IdeaService) List(ctx context.Context, category string, limit, offset int) ([]models.Idea, error) {
	query := `SELECT id, title, description, category, tags, favorite, created_at, updated_at FROM ideas`
	args := []interface{}{}
	argIdx := 1

	if category != "" {
		query += fmt.Sprintf(" WHERE category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Category, &idea.Tags, &idea.Favorite, &idea.CreatedAt, &idea.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

type UpdateIdeaRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Favorite    *bool     `json:"favorite,omitempty"`
}

func (s *IdeaService) Update(ctx context.Context, id uuid.UUID, req UpdateIdeaRequest) (*models.Idea, error) {
	set := "updated_at = now()"
	args := []interface{}{id}
	argIdx := 2

	if req.Title != nil {
		set += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Description != nil {
		set += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Category != nil {
		set += fmt.Sprintf(", category = $%d", argIdx)
		args = append(args, *req.Category)
		argIdx++
	}
	if req.Tags != nil {
		set += fmt.Sprintf(", tags = $%d", argIdx)
		args = append(args, *req.Tags)
		argIdx++
	}
	if req.Favorite != nil {
		set += fmt.Sprintf(", favorite = $%d", argIdx)
		args = append(args, *req.Favorite)
		argIdx++
	}

	var idea models.Idea
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE ideas SET %s WHERE id = $1
		 RETURNING id, title, description, category, tags, favorite, created_at, updated_at`, set),
		args...,
	).Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Category, &idea.Tags, &idea.Favorite, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &idea, nil
}

func (s *IdeaService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM ideas WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete idea: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
