package studio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type ThumbnailService struct {
	db *pgxpool.Pool
}

func NewThumbnailService(db *pgxpool.Pool) *ThumbnailService {
	return &ThumbnailService{db: db}
}

type CreateThumbnailRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Style    string `json:"style"`
	Emoji    string `json:"emoji"`
}

func (s *ThumbnailService) Create(ctx context.Context, req CreateThumbnailRequest) (*models.Thumbnail, error) {
	style := req.Style
	if style == "" {
		style = "bold"
	}

	var th models.Thumbnail
	err := s.db.QueryRow(ctx,
		`INSERT INTO thumbnails (title, subtitle, style, emoji)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, subtitle, style, emoji, created_at, updated_at`,
		req.Title, req.Subtitle, style, req.Emoji,
	).Scan(&th.ID, &th.Title, &th.Subtitle, &th.Style, &th.Emoji, &th.CreatedAt, &th.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert thumbnail: %w", err)
	}
	return &th, nil
}

func (s *ThumbnailService) GetByID(ctx context.Context, id uuid.UUID) (*models.Thumbnail, error) {
	var th models.Thumbnail
	err := s.db.QueryRow(ctx,
		`SELECT id, title, subtitle, style, emoji, created_at, updated_at
		 FROM thumbnails WHERE id = $1`,
		id,
	).Scan(&th.ID, &th.Title, &th.Subtitle, &th.Style, &th.Emoji, &th.CreatedAt, &th.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &th, nil
}

func (s *ThumbnailService) List(ctx context.Context, limit, offset int) ([]models.Thumbnail, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, subtitle, style, emoji, created_at, updated_at
		 FROM thumbnails ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list thumbnails: %w", err)
	}
	defer rows.Close()

	var thumbs []models.Thumbnail
	for rows.Next() {
		var th models.Thumbnail
		if err := rows.Scan(&th.ID, &th.Title, &th.Subtitle, &th.Style, &th.Emoji, &th.CreatedAt, &th.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan thumbnail: %w", err)
		}
		thumbs = append(thumbs, th)
	}
	return thumbs, nil
}

type UpdateThumbnailRequest struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Style    *string `json:"style,omitempty"`
	Emoji    *string `json:"emoji,omitempty"`
}

func (s *ThumbnailService) Update(ctx context.Context, id uuid.UUID, req UpdateThumbnailRequest) (*models.Thumbnail, error) {
	set := "updated_at = now()"
	args := []interface{}{id}
	argIdx := 2

	if req.Title != nil {
		set += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Subtitle != nil {
		set += fmt.Sprintf(", subtitle = $%d", argIdx)
		args = append(args, *req.Subtitle)
		argIdx++
	}
	if req.Style != nil {
		set += fmt.Sprintf(", style = $%d", argIdx)
		args = append(args, *req.Style)
		argIdx++
	}
	if req.Emoji != nil {
		set += fmt.Sprintf(", emoji = $%d", argIdx)
		args = append(args, *req.Emoji)
		argIdx++
	}

	var th models.Thumbnail
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE thumbnails SET %s WHERE id = $1
		 RETURNING id, title, subtitle, style, emoji, created_at, updated_at`, set),
		args...,
	).Scan(&th.ID, &th.Title, &th.Subtitle, &th.Style, &th.Emoji, &th.CreatedAt, &th.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &th, nil
}

func (s *ThumbnailService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM thumbnails WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete thumbnail: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
