package repository

import (
	"context"
	"errors"

	"talentgate/internal/database"

	"github.com/jackc/pgx/v5"
)

const globalSettingsName = "global-settings"

// SettingsRepository reads and writes the single operator-configured global
// settings document.
type SettingsRepository interface {
	GetScreeningPrompt(ctx context.Context) (string, error)
	SetScreeningPrompt(ctx context.Context, prompt string) error
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) GetScreeningPrompt(ctx context.Context) (string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT cv_screening_prompt FROM global_settings WHERE name = $1`,
		globalSettingsName,
	)
	var prompt string
	if err := row.Scan(&prompt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return prompt, nil
}

func (r *PostgresSettingsRepository) SetScreeningPrompt(ctx context.Context, prompt string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO global_settings (name, cv_screening_prompt)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET cv_screening_prompt = EXCLUDED.cv_screening_prompt`,
		globalSettingsName, prompt,
	)
	return err
}
