package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"talentgate/internal/database"
	"talentgate/internal/domain/career"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("record not found")

// CareerPartial is the allow-listed field set an update may touch. Identifier
// fields and the deprecated unified screening setting are deliberately absent
// so callers cannot alter or reintroduce them.
type CareerPartial struct {
	JobTitle    *string
	Description *string

	Questions             *[]career.QuestionGroup
	PreScreeningQuestions *[]career.PreScreenQuestion

	Location        *string
	Country         *string
	Province        *string
	WorkSetup       *string
	WorkSetupRemark *string
	EmploymentType  *string

	CVScreeningSetting *string
	AIScreeningSetting *string

	RequireVideo     *bool
	SalaryNegotiable *bool
	MinimumSalary    *float64
	MaximumSalary    *float64

	Status       *string
	LastEditedBy *string
}

type CareerRepository interface {
	Create(ctx context.Context, c career.Career) error
	Get(ctx context.Context, id career.RecordID, orgID *uuid.UUID) (career.Career, error)
	UpdatePartial(ctx context.Context, id career.RecordID, p CareerPartial) error
	CountActiveByOrg(ctx context.Context, orgID uuid.UUID) (int, error)
	TouchActivity(ctx context.Context, legacyID string, at time.Time) error
}

type PostgresCareerRepository struct {
	db database.DB
}

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

const careerColumns = `record_id, legacy_id, org_id, job_title, description,
	questions, pre_screening_questions, location, country, province,
	work_setup, work_setup_remarks, employment_type,
	cv_screening_setting, ai_screening_setting, require_video,
	salary_negotiable, minimum_salary, maximum_salary, status,
	created_by, last_edited_by, created_at, updated_at, last_activity_at`

func (r *PostgresCareerRepository) Create(ctx context.Context, c career.Career) error {
	questions, err := json.Marshal(c.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	var preScreening []byte
	if c.PreScreeningQuestions != nil {
		preScreening, err = json.Marshal(c.PreScreeningQuestions)
		if err != nil {
			return fmt.Errorf("marshal pre-screening questions: %w", err)
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO careers (
			record_id, legacy_id, org_id, job_title, description,
			questions, pre_screening_questions, location, country, province,
			work_setup, work_setup_remarks, employment_type,
			cv_screening_setting, ai_screening_setting, require_video,
			salary_negotiable, minimum_salary, maximum_salary, status,
			created_by, last_edited_by, created_at, updated_at, last_activity_at
		) VALUES (
			$1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25
		)`,
		c.RecordID, c.LegacyID, c.OrgID, c.JobTitle, c.Description,
		questions, nullableJSON(preScreening), c.Location, c.Country, c.Province,
		c.WorkSetup, c.WorkSetupRemark, c.EmploymentType,
		c.CVScreeningSetting, c.AIScreeningSetting, c.RequireVideo,
		c.SalaryNegotiable, c.MinimumSalary, c.MaximumSalary, c.Status,
		c.CreatedBy, c.LastEditedBy, c.CreatedAt, c.UpdatedAt, c.LastActivityAt,
	)
	return err
}

func (r *PostgresCareerRepository) Get(ctx context.Context, id career.RecordID, orgID *uuid.UUID) (career.Career, error) {
	query := `SELECT ` + careerColumns + ` FROM careers WHERE `
	args := []any{id.Value()}
	if id.IsNative() {
		query += `record_id = $1`
	} else {
		query += `legacy_id = $1`
	}
	if orgID != nil {
		query += ` AND org_id = $2`
		args = append(args, *orgID)
	}

	row := r.db.QueryRow(ctx, query, args...)
	return scanCareer(row)
}

func (r *PostgresCareerRepository) UpdatePartial(ctx context.Context, id career.RecordID, p CareerPartial) error {
	sets := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if p.JobTitle != nil {
		sets = append(sets, "job_title = "+arg(*p.JobTitle))
	}
	if p.Description != nil {
		sets = append(sets, "description = "+arg(*p.Description))
	}
	if p.Questions != nil {
		b, err := json.Marshal(*p.Questions)
		if err != nil {
			return fmt.Errorf("marshal questions: %w", err)
		}
		sets = append(sets, "questions = "+arg(b)+"::jsonb")
	}
	if p.PreScreeningQuestions != nil {
		b, err := json.Marshal(*p.PreScreeningQuestions)
		if err != nil {
			return fmt.Errorf("marshal pre-screening questions: %w", err)
		}
		sets = append(sets, "pre_screening_questions = "+arg(b)+"::jsonb")
	}
	if p.Location != nil {
		sets = append(sets, "location = "+arg(*p.Location))
	}
	if p.Country != nil {
		sets = append(sets, "country = "+arg(*p.Country))
	}
	if p.Province != nil {
		sets = append(sets, "province = "+arg(*p.Province))
	}
	if p.WorkSetup != nil {
		sets = append(sets, "work_setup = "+arg(*p.WorkSetup))
	}
	if p.WorkSetupRemark != nil {
		sets = append(sets, "work_setup_remarks = "+arg(*p.WorkSetupRemark))
	}
	if p.EmploymentType != nil {
		sets = append(sets, "employment_type = "+arg(*p.EmploymentType))
	}
	if p.CVScreeningSetting != nil {
		sets = append(sets, "cv_screening_setting = "+arg(*p.CVScreeningSetting))
	}
	if p.AIScreeningSetting != nil {
		sets = append(sets, "ai_screening_setting = "+arg(*p.AIScreeningSetting))
	}
	if p.RequireVideo != nil {
		sets = append(sets, "require_video = "+arg(*p.RequireVideo))
	}
	if p.SalaryNegotiable != nil {
		sets = append(sets, "salary_negotiable = "+arg(*p.SalaryNegotiable))
	}
	if p.MinimumSalary != nil {
		sets = append(sets, "minimum_salary = "+arg(*p.MinimumSalary))
	}
	if p.MaximumSalary != nil {
		sets = append(sets, "maximum_salary = "+arg(*p.MaximumSalary))
	}
	if p.Status != nil {
		sets = append(sets, "status = "+arg(*p.Status))
	}
	if p.LastEditedBy != nil {
		sets = append(sets, "last_edited_by = "+arg(*p.LastEditedBy))
	}

	keyCol := "legacy_id"
	if id.IsNative() {
		keyCol = "record_id"
	}
	where := keyCol + " = " + arg(id.Value())

	query := "UPDATE careers SET " + strings.Join(sets, ", ") + " WHERE " + where
	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCareerRepository) CountActiveByOrg(ctx context.Context, orgID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM careers WHERE org_id = $1 AND status = $2`,
		orgID, career.StatusActive,
	)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresCareerRepository) TouchActivity(ctx context.Context, legacyID string, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE careers SET last_activity_at = $1 WHERE legacy_id = $2`,
		at, legacyID,
	)
	return err
}

func scanCareer(row database.Row) (career.Career, error) {
	var c career.Career
	var questions, preScreening []byte

	err := row.Scan(
		&c.RecordID, &c.LegacyID, &c.OrgID, &c.JobTitle, &c.Description,
		&questions, &preScreening, &c.Location, &c.Country, &c.Province,
		&c.WorkSetup, &c.WorkSetupRemark, &c.EmploymentType,
		&c.CVScreeningSetting, &c.AIScreeningSetting, &c.RequireVideo,
		&c.SalaryNegotiable, &c.MinimumSalary, &c.MaximumSalary, &c.Status,
		&c.CreatedBy, &c.LastEditedBy, &c.CreatedAt, &c.UpdatedAt, &c.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.Career{}, ErrNotFound
		}
		return career.Career{}, err
	}

	c.RecordID = strings.TrimSpace(c.RecordID)
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &c.Questions); err != nil {
			return career.Career{}, fmt.Errorf("unmarshal questions: %w", err)
		}
	}
	if len(preScreening) > 0 {
		if err := json.Unmarshal(preScreening, &c.PreScreeningQuestions); err != nil {
			return career.Career{}, fmt.Errorf("unmarshal pre-screening questions: %w", err)
		}
	}
	return c, nil
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
