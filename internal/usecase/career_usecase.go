package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentgate/internal/domain/career"
	"talentgate/internal/infrastructure/cache"
	"talentgate/internal/repository"
	"talentgate/internal/sanitize"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const careerCacheTTL = 600 * time.Second

type CareerUsecase interface {
	Create(ctx context.Context, raw map[string]any) (career.Career, error)
	Get(ctx context.Context, id string, orgID string) (career.Career, error)
	Update(ctx context.Context, id string, raw map[string]any) (career.Career, error)
}

type Career struct {
	careers repository.CareerRepository
	orgs    repository.OrganizationRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewCareerUsecase(careers repository.CareerRepository, orgs repository.OrganizationRepository, c *cache.Redis, logger *zap.Logger) *Career {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Career{careers: careers, orgs: orgs, cache: c, logger: logger}
}

// Create validates and persists a new posting. The organization's plan quota
// is enforced against its current number of active postings.
func (u *Career) Create(ctx context.Context, raw map[string]any) (career.Career, error) {
	in, err := sanitize.Career(raw)
	if err != nil {
		return career.Career{}, err
	}

	var missing []string
	require := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}
	require("orgID", str(in.OrgID) != "")
	require("jobTitle", str(in.JobTitle) != "")
	require("description", str(in.Description) != "")
	require("questions", in.HasQuestions)
	require("location", str(in.Location) != "")
	require("workSetup", str(in.WorkSetup) != "")
	if len(missing) > 0 {
		return career.Career{}, fmt.Errorf("%w: missing required fields: %v", ErrInvalidInput, missing)
	}

	orgID, err := uuid.Parse(str(in.OrgID))
	if err != nil {
		return career.Career{}, fmt.Errorf("%w: orgID is not a valid uuid", ErrInvalidInput)
	}

	if err := career.ValidateSalaryRange(in.MinimumSalary, in.MaximumSalary); err != nil {
		return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.HasPreScreening {
		if err := career.ValidatePreScreenQuestions(in.PreScreeningQuestions); err != nil {
			return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	org, err := u.orgs.GetWithPlan(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return career.Career{}, ErrOrganizationNotFound
		}
		u.logger.Error("load organization", zap.Error(err))
		return career.Career{}, ErrInternal
	}

	active, err := u.careers.CountActiveByOrg(ctx, orgID)
	if err != nil {
		u.logger.Error("count active careers", zap.Error(err))
		return career.Career{}, ErrInternal
	}
	if active >= org.JobSlots() {
		return career.Career{}, ErrQuotaExceeded
	}

	now := time.Now().UTC()
	c := career.Career{
		RecordID: career.NewNativeID(),
		LegacyID: career.NewLegacyID(),
		OrgID:    orgID,

		JobTitle:    str(in.JobTitle),
		Description: str(in.Description),

		Questions:             in.Questions,
		PreScreeningQuestions: in.PreScreeningQuestions,

		Location:        str(in.Location),
		Country:         str(in.Country),
		Province:        str(in.Province),
		WorkSetup:       str(in.WorkSetup),
		WorkSetupRemark: str(in.WorkSetupRemark),
		EmploymentType:  str(in.EmploymentType),

		CVScreeningSetting: settingOrDefault(in.CVScreeningSetting, in.ScreeningSetting),
		AIScreeningSetting: settingOrDefault(in.AIScreeningSetting, in.ScreeningSetting),

		RequireVideo:     boolVal(in.RequireVideo),
		SalaryNegotiable: boolVal(in.SalaryNegotiable),
		MinimumSalary:    in.MinimumSalary,
		MaximumSalary:    in.MaximumSalary,

		Status: career.StatusActive,

		CreatedBy:    str(in.CreatedBy),
		LastEditedBy: str(in.LastEditedBy),

		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}
	if s := str(in.Status); s != "" {
		c.Status = s
	}

	if err := u.careers.Create(ctx, c); err != nil {
		u.logger.Error("create career", zap.Error(err))
		return career.Career{}, ErrInternal
	}
	return c, nil
}

// Get resolves either identifier form, optionally scoped to an organization.
// Unscoped lookups are served through the cache.
func (u *Career) Get(ctx context.Context, id string, orgID string) (career.Career, error) {
	recordID, err := career.ParseRecordID(id)
	if err != nil {
		return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var scope *uuid.UUID
	if orgID != "" {
		parsed, err := uuid.Parse(orgID)
		if err != nil {
			return career.Career{}, fmt.Errorf("%w: orgID is not a valid uuid", ErrInvalidInput)
		}
		scope = &parsed
	}

	key := careerCacheKey(recordID.Value())
	if scope == nil {
		var cached career.Career
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	c, err := u.careers.Get(ctx, recordID, scope)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return career.Career{}, ErrNotFound
		}
		u.logger.Error("get career", zap.Error(err))
		return career.Career{}, ErrInternal
	}

	if scope == nil {
		if err := u.cache.SetJSON(ctx, key, c, careerCacheTTL); err != nil {
			u.logger.Warn("cache career", zap.Error(err))
		}
	}
	return c, nil
}

// Update merges an allow-listed partial into an existing posting. Caller
// supplied identifier fields are dropped before sanitization so a payload
// echoing the record back never trips unknown-field rejection.
func (u *Career) Update(ctx context.Context, id string, raw map[string]any) (career.Career, error) {
	recordID, err := career.ParseRecordID(id)
	if err != nil {
		return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, key := range []string{"_id", "id", "recordID", "interviewID"} {
		delete(raw, key)
	}

	in, err := sanitize.CareerPartial(raw)
	if err != nil {
		return career.Career{}, err
	}

	if in.MinimumSalary != nil && in.MaximumSalary != nil {
		if err := career.ValidateSalaryRange(in.MinimumSalary, in.MaximumSalary); err != nil {
			return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if in.HasPreScreening {
		if err := career.ValidatePreScreenQuestions(in.PreScreeningQuestions); err != nil {
			return career.Career{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	p := repository.CareerPartial{
		JobTitle:           in.JobTitle,
		Description:        in.Description,
		Location:           in.Location,
		Country:            in.Country,
		Province:           in.Province,
		WorkSetup:          in.WorkSetup,
		WorkSetupRemark:    in.WorkSetupRemark,
		EmploymentType:     in.EmploymentType,
		CVScreeningSetting: in.CVScreeningSetting,
		AIScreeningSetting: in.AIScreeningSetting,
		RequireVideo:       in.RequireVideo,
		SalaryNegotiable:   in.SalaryNegotiable,
		MinimumSalary:      in.MinimumSalary,
		MaximumSalary:      in.MaximumSalary,
		Status:             in.Status,
		LastEditedBy:       in.LastEditedBy,
	}
	if in.HasQuestions {
		p.Questions = &in.Questions
	}
	if in.HasPreScreening {
		p.PreScreeningQuestions = &in.PreScreeningQuestions
	}

	if err := u.careers.UpdatePartial(ctx, recordID, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return career.Career{}, ErrNotFound
		}
		u.logger.Error("update career", zap.Error(err))
		return career.Career{}, ErrInternal
	}

	updated, err := u.careers.Get(ctx, recordID, nil)
	if err != nil {
		u.logger.Error("reload career after update", zap.Error(err))
		return career.Career{}, ErrInternal
	}

	// Both identifier forms may have been used as cache keys.
	if err := u.cache.Delete(ctx, careerCacheKey(updated.RecordID), careerCacheKey(updated.LegacyID)); err != nil {
		u.logger.Warn("invalidate career cache", zap.Error(err))
	}
	return updated, nil
}

func careerCacheKey(id string) string {
	return "careers:" + id
}

func settingOrDefault(specific, deprecated *string) string {
	if s := str(specific); s != "" {
		return s
	}
	return str(deprecated)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolVal(p *bool) bool {
	return p != nil && *p
}
