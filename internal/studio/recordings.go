package studio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type RecordingService struct {
	db *pgxpool.Pool
}

func NewRecordingService(db *pgxpool.Pool) *RecordingService {
	return &RecordingService{db: db}
}

type CreateRecordingRequest struct {
	Title           string `json:"title"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (s *RecordingService) Create(ctx context.Context, req CreateRecordingRequest) (*models.Recording, error) {
	var rec models.Recording
	err := s.db.QueryRow(ctx,
		`INSERT INTO recordings (title, video_url, duration_seconds)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, video_url, duration_seconds, created_at`,
		req.Title, req.VideoURL, req.DurationSeconds,
	).Scan(&rec.ID, &rec.Title, &rec.VideoURL, &rec.DurationSeconds, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert recording: %w", err)
	}
	return &rec, nil
}

func (s *RecordingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Recording, error) {
	var rec models.Recording
	err := s.db.QueryRow(ctx,
		`SELECT id, title, video_url, duration_seconds, created_at
		 FROM recordings WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.VideoURL, &rec.DurationSeconds, &rec.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (s *RecordingService) List(ctx context.Context, limit, offset int) ([]models.Recording, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, video_url, duration_seconds, created_at
		 FROM recordings ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	var recs []models.Recording
	for rows.Next() {
		var rec models.Recording
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.VideoURL, &rec.DurationSeconds, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (s *RecordingService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM recordings WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete recording: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
