package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Feedback is one user reaction to a recommended destination.
type Feedback struct {
	ID        int
	IdeaID    string // destination key the reaction refers to
	Value     int    // +1 / -1 thumbs
	Note      string
	Answers   map[string]any // quiz answers snapshot at reaction time
	CreatedAt time.Time
}

// Querier abstracts the subset of pgxpool.Pool used by Repository, so tests
// can inject a mock.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for feedback records.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// InsertFeedback stores one feedback record. Answers are stored as JSONB.
func (r *Repository) InsertFeedback(ctx context.Context, fb Feedback) error {
	answersJSON, err := json.Marshal(fb.Answers)
	if err != nil {
		return fmt.Errorf("marshaling feedback answers for idea %s: %w", fb.IdeaID, err)
	}

	const q = `
		INSERT INTO feedback (idea_id, value, note, answers, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := r.q.Exec(ctx, q, fb.IdeaID, fb.Value, fb.Note, answersJSON); err != nil {
		return fmt.Errorf("inserting feedback for idea %s: %w", fb.IdeaID, err)
	}
	return nil
}

// ListFeedbackForIdea returns the feedback recorded against one destination
// key, newest first.
func (r *Repository) ListFeedbackForIdea(ctx context.Context, ideaID string) ([]Feedback, error) {
	const q = `
		SELECT id, idea_id, value, note, answers, created_at
		FROM feedback
		WHERE idea_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, q, ideaID)
	if err != nil {
		return nil, fmt.Errorf("querying feedback for idea %s: %w", ideaID, err)
	}
	defer rows.Close()

	var results []Feedback
	for rows.Next() {
		var fb Feedback
		var answersJSON []byte

		if err := rows.Scan(&fb.ID, &fb.IdeaID, &fb.Value, &fb.Note, &answersJSON, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		if len(answersJSON) > 0 {
			if err := json.Unmarshal(answersJSON, &fb.Answers); err != nil {
				return nil, fmt.Errorf("unmarshaling feedback answers: %w", err)
			}
		}
		results = append(results, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback rows: %w", err)
	}
	return results, nil
}
