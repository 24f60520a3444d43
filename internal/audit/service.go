// Package audit persists moderation rejection events so flagged writes can
// be reviewed later. Reason tags stay internal; they are never part of an
// API error response.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

type Event struct {
	ResourceType string
	Reasons      []string
	Details      map[string]interface{}
	IPAddress    string
}

func (s *Service) LogRejection(ctx context.Context, event Event) error {
	details, _ := json.Marshal(event.Details)
	reasons := event.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO moderation_events (resource_type, reasons, details, ip_address)
		 VALUES ($1, $2, $3, $4)`,
		event.ResourceType, reasons, details, event.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("insert moderation event: %w", err)
	}
	return nil
}

type Query struct {
	ResourceType string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}

func (s *Service) ListEvents(ctx context.Context, q Query) ([]models.ModerationEvent, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	query := `SELECT id, resource_type, reasons, details, ip_address, created_at
			  FROM moderation_events WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if q.ResourceType != "" {
		query += fmt.Sprintf(" AND resource_type = $%d", argIdx)
		args = append(args, q.ResourceType)
		argIdx++
	}
	if q.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, *q.StartDate)
		argIdx++
	}
	if q.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, *q.EndDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query moderation events: %w", err)
	}
	defer rows.Close()

	var events []models.ModerationEvent
	for rows.Next() {
		var e models.ModerationEvent
		if err := rows.Scan(&e.ID, &e.ResourceType, &e.Reasons, &e.Details, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan moderation event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
