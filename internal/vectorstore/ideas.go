package vectorstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
)

// IdeaStore keeps one embedding per idea so "more like this" lookups can
// rank past ideas by cosine similarity.
type IdeaStore struct {
	db *pgxpool.Pool
}

func NewIdeaStore(db *pgxpool.Pool) *IdeaStore {
	return &IdeaStore{db: db}
}

func (s *IdeaStore) Upsert(ctx context.Context, ideaID uuid.UUID, embedding []float32) error {
	vec := pgvector.NewVector(embedding)

	_, err := s.db.Exec(ctx,
		`INSERT INTO idea_embeddings (idea_id, embedding)
		 VALUES ($1, $2)
		 ON CONFLICT (idea_id) DO UPDATE SET embedding = $2, updated_at = now()`,
		ideaID, vec,
	)
	if err != nil {
		return fmt.Errorf("upsert idea embedding: %w", err)
	}
	return nil
}

// Similar returns the closest ideas to the query vector, excluding the idea
// the query came from.
func (s *IdeaStore) Similar(ctx context.Context, query []float32, exclude uuid.UUID, topK int) ([]models.IdeaMatch, error) {
	if topK <= 0 {
		topK = 5
	}

	vec := pgvector.NewVector(query)

	rows, err := s.db.Query(ctx,
		`SELECT i.id, i.title, i.description, i.category, i.tags, i.favorite, i.created_at, i.updated_at,
		        1 - (e.embedding <=> $1) AS score
		 FROM idea_embeddings e
		 JOIN ideas i ON i.id = e.idea_id
		 WHERE e.idea_id <> $2
		 ORDER BY e.embedding <=> $1
		 LIMIT $3`,
		vec, exclude, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var matches []models.IdeaMatch
	for rows.Next() {
		var m models.IdeaMatch
		if err := rows.Scan(&m.Idea.ID, &m.Idea.Title, &m.Idea.Description, &m.Idea.Category,
			&m.Idea.Tags, &m.Idea.Favorite, &m.Idea.CreatedAt, &m.Idea.UpdatedAt, &m.Score); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (s *IdeaStore) Get(ctx context.Context, ideaID uuid.UUID) ([]float32, error) {
	var vec pgvector.Vector
	err := s.db.QueryRow(ctx,
		"SELECT embedding FROM idea_embeddings WHERE idea_id = $1", ideaID,
	).Scan(&vec)
	if err != nil {
		return nil, fmt.Errorf("get idea embedding: %w", err)
	}
	return vec.Slice(), nil
}
