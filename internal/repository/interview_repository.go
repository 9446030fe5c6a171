package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"talentgate/internal/database"
	"talentgate/internal/domain/interview"
	"talentgate/internal/domain/screening"

	"github.com/jackc/pgx/v5"
)

// InterviewPartial is the allow-listed field set an applicant-facing update
// may merge into an interview record.
type InterviewPartial struct {
	PreScreenAnswers map[string]any
	CurrentStep      *string
	Status           *string
	Name             *string
}

func (p InterviewPartial) Empty() bool {
	return p.PreScreenAnswers == nil && p.CurrentStep == nil && p.Status == nil && p.Name == nil
}

type InterviewRepository interface {
	Get(ctx context.Context, recordID string) (interview.Interview, error)
	GetForApplicant(ctx context.Context, recordID, email string) (interview.Interview, error)
	UpdatePartial(ctx context.Context, recordID, email string, p InterviewPartial) error
	MarkNoCV(ctx context.Context, recordID string) error
	ApplyScreening(ctx context.Context, recordID string, out screening.Outcome) error
}

type PostgresInterviewRepository struct {
	db database.DB
}

func NewPostgresInterviewRepository(db database.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

const interviewColumns = `record_id, email, career_legacy_id, name, job_title,
	description, screening_setting, cv_status, state_class, cv_setting_result,
	cv_screening_reason, confidence, job_fit_score, current_step, status,
	pre_screen_answers, created_at, updated_at`

func (r *PostgresInterviewRepository) Get(ctx context.Context, recordID string) (interview.Interview, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE record_id = $1`,
		recordID,
	)
	return scanInterview(row)
}

func (r *PostgresInterviewRepository) GetForApplicant(ctx context.Context, recordID, email string) (interview.Interview, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE record_id = $1 AND email = $2`,
		recordID, email,
	)
	return scanInterview(row)
}

func (r *PostgresInterviewRepository) UpdatePartial(ctx context.Context, recordID, email string, p InterviewPartial) error {
	sets := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if p.PreScreenAnswers != nil {
		b, err := json.Marshal(p.PreScreenAnswers)
		if err != nil {
			return fmt.Errorf("marshal pre-screen answers: %w", err)
		}
		sets = append(sets, "pre_screen_answers = "+arg(b)+"::jsonb")
	}
	if p.CurrentStep != nil {
		sets = append(sets, "current_step = "+arg(*p.CurrentStep))
	}
	if p.Status != nil {
		sets = append(sets, "status = "+arg(*p.Status))
	}
	if p.Name != nil {
		sets = append(sets, "name = "+arg(*p.Name))
	}

	query := "UPDATE interviews SET " + strings.Join(sets, ", ") +
		" WHERE record_id = " + arg(recordID) + " AND email = " + arg(email)

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkNoCV writes the terminal no-CV sentinel, touching only the screening
// verdict fields.
func (r *PostgresInterviewRepository) MarkNoCV(ctx context.Context, recordID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE interviews SET
			cv_status = $1,
			state_class = $2,
			cv_setting_result = '',
			cv_screening_reason = $3,
			updated_at = now()
		WHERE record_id = $4`,
		screening.StatusNoCV, screening.StateMuted, screening.ReasonNoCV, recordID,
	)
	return err
}

// ApplyScreening writes a full screening outcome. Status is only overwritten
// when the outcome's gate assigned one.
func (r *PostgresInterviewRepository) ApplyScreening(ctx context.Context, recordID string, out screening.Outcome) error {
	_, err := r.db.Exec(ctx, `
		UPDATE interviews SET
			cv_status = $1,
			state_class = $2,
			cv_setting_result = $3,
			cv_screening_reason = $4,
			confidence = $5,
			job_fit_score = $6,
			current_step = $7,
			status = CASE WHEN $8 = '' THEN status ELSE $8 END,
			updated_at = now()
		WHERE record_id = $9`,
		out.CVStatus, out.StateClass, out.CVSettingResult, out.CVScreeningReason,
		out.Confidence, out.JobFitScore, out.CurrentStep, out.Status, recordID,
	)
	return err
}

func scanInterview(row database.Row) (interview.Interview, error) {
	var iv interview.Interview
	var answers []byte

	err := row.Scan(
		&iv.RecordID, &iv.Email, &iv.CareerLegacyID, &iv.Name, &iv.JobTitle,
		&iv.Description, &iv.ScreeningSetting, &iv.CVStatus, &iv.StateClass,
		&iv.CVSettingResult, &iv.CVScreeningReason, &iv.Confidence,
		&iv.JobFitScore, &iv.CurrentStep, &iv.Status, &answers,
		&iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.Interview{}, ErrNotFound
		}
		return interview.Interview{}, err
	}

	iv.RecordID = strings.TrimSpace(iv.RecordID)
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &iv.PreScreenAnswers); err != nil {
			return interview.Interview{}, fmt.Errorf("unmarshal pre-screen answers: %w", err)
		}
	}
	return iv, nil
}
