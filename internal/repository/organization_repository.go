package repository

import (
	"context"
	"errors"

	"talentgate/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Organization carries the plan fields quota enforcement needs.
type Organization struct {
	ID            uuid.UUID
	Name          string
	PlanName      string
	JobLimit      int
	ExtraJobSlots int
}

// JobSlots is the total number of active postings the organization may hold.
func (o Organization) JobSlots() int {
	return o.JobLimit + o.ExtraJobSlots
}

type OrganizationRepository interface {
	GetWithPlan(ctx context.Context, id uuid.UUID) (Organization, error)
}

type PostgresOrganizationRepository struct {
	db database.DB
}

func NewPostgresOrganizationRepository(db database.DB) *PostgresOrganizationRepository {
	return &PostgresOrganizationRepository{db: db}
}

func (r *PostgresOrganizationRepository) GetWithPlan(ctx context.Context, id uuid.UUID) (Organization, error) {
	row := r.db.QueryRow(ctx, `
		SELECT o.id, o.name, p.name, p.job_limit, o.extra_job_slots
		FROM organizations o
		JOIN organization_plans p ON p.id = o.plan_id
		WHERE o.id = $1`,
		id,
	)

	var org Organization
	err := row.Scan(&org.ID, &org.Name, &org.PlanName, &org.JobLimit, &org.ExtraJobSlots)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Organization{}, ErrNotFound
		}
		return Organization{}, err
	}
	return org, nil
}
