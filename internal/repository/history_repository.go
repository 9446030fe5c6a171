package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"talentgate/internal/database"
)

// HistoryRepository appends to the append-only interview audit log.
type HistoryRepository interface {
	Append(ctx context.Context, interviewRecordID string, payload map[string]any, at time.Time) error
}

type PostgresHistoryRepository struct {
	db database.DB
}

func NewPostgresHistoryRepository(db database.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Append(ctx context.Context, interviewRecordID string, payload map[string]any, at time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal history payload: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO interview_history (interview_record_id, payload, created_at)
		VALUES ($1, $2::jsonb, $3)`,
		interviewRecordID, b, at,
	)
	return err
}
