package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"talentgate/internal/database"
	"talentgate/internal/domain/interview"

	"github.com/jackc/pgx/v5"
)

type CVRepository interface {
	GetByEmail(ctx context.Context, email string) (interview.CV, error)
}

type PostgresCVRepository struct {
	db database.DB
}

func NewPostgresCVRepository(db database.DB) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

func (r *PostgresCVRepository) GetByEmail(ctx context.Context, email string) (interview.CV, error) {
	row := r.db.QueryRow(ctx,
		`SELECT email, digital_cv FROM applicant_cvs WHERE email = $1`,
		email,
	)

	var cv interview.CV
	var sections []byte
	if err := row.Scan(&cv.Email, &sections); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.CV{}, ErrNotFound
		}
		return interview.CV{}, err
	}

	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &cv.DigitalCV); err != nil {
			return interview.CV{}, fmt.Errorf("unmarshal digital cv: %w", err)
		}
	}
	return cv, nil
}
