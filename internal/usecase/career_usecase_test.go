package usecase

import (
	"context"
	"errors"
	"testing"

	"talentgate/internal/domain/career"
	"talentgate/internal/repository"

	"github.com/google/uuid"
)

func validCareerPayload(orgID string) map[string]any {
	return map[string]any{
		"orgID":       orgID,
		"jobTitle":    "Backend Engineer",
		"description": "<p>Build services</p>",
		"questions": []any{
			map[string]any{
				"category":  "Technical",
				"questions": []any{map[string]any{"question": "Why Go?"}},
			},
		},
		"location":         "Manila",
		"workSetup":        career.WorkSetupRemote,
		"screeningSetting": career.SettingOnlyStrongFit,
	}
}

func TestCareerCreate_MissingRequiredFields(t *testing.T) {
	uc := NewCareerUsecase(&mockCareerRepo{}, &mockOrgRepo{}, nil, nil)

	_, err := uc.Create(context.Background(), map[string]any{"jobTitle": "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareerCreate_SalaryRangeInverted(t *testing.T) {
	uc := NewCareerUsecase(&mockCareerRepo{}, &mockOrgRepo{}, nil, nil)

	payload := validCareerPayload(uuid.NewString())
	payload["minimumSalary"] = 90000.0
	payload["maximumSalary"] = 40000.0

	_, err := uc.Create(context.Background(), payload)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareerCreate_QuotaBoundary(t *testing.T) {
	org := repository.Organization{ID: uuid.New(), JobLimit: 2, ExtraJobSlots: 1}

	repo := &mockCareerRepo{activeCount: 3}
	uc := NewCareerUsecase(repo, &mockOrgRepo{org: org}, nil, nil)

	_, err := uc.Create(context.Background(), validCareerPayload(org.ID.String()))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("at the slot limit creation must fail, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing should be persisted past the quota")
	}

	repo = &mockCareerRepo{activeCount: 2}
	uc = NewCareerUsecase(repo, &mockOrgRepo{org: org}, nil, nil)

	created, err := uc.Create(context.Background(), validCareerPayload(org.ID.String()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted career")
	}
	id, err := career.ParseRecordID(created.RecordID)
	if err != nil || !id.IsNative() {
		t.Fatalf("recordID %q is not a native id", created.RecordID)
	}
	if created.LegacyID == "" {
		t.Fatalf("legacy id must be assigned")
	}
	if created.Status != career.StatusActive {
		t.Fatalf("status = %q, want %q", created.Status, career.StatusActive)
	}
}

func TestCareerCreate_DeprecatedSettingFillsPerStageDefaults(t *testing.T) {
	org := repository.Organization{ID: uuid.New(), JobLimit: 5}
	repo := &mockCareerRepo{}
	uc := NewCareerUsecase(repo, &mockOrgRepo{org: org}, nil, nil)

	created, err := uc.Create(context.Background(), validCareerPayload(org.ID.String()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.CVScreeningSetting != career.SettingOnlyStrongFit {
		t.Fatalf("cvScreeningSetting = %q", created.CVScreeningSetting)
	}
	if created.AIScreeningSetting != career.SettingOnlyStrongFit {
		t.Fatalf("aiScreeningSetting = %q", created.AIScreeningSetting)
	}

	payload := validCareerPayload(org.ID.String())
	payload["cvScreeningSetting"] = career.SettingGoodFitAndAbove
	created, err = uc.Create(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.CVScreeningSetting != career.SettingGoodFitAndAbove {
		t.Fatalf("explicit per-stage setting must win, got %q", created.CVScreeningSetting)
	}
}

func TestCareerCreate_OrganizationNotFound(t *testing.T) {
	uc := NewCareerUsecase(&mockCareerRepo{}, &mockOrgRepo{err: repository.ErrNotFound}, nil, nil)

	_, err := uc.Create(context.Background(), validCareerPayload(uuid.NewString()))
	if !errors.Is(err, ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestCareerGet_EmptyID(t *testing.T) {
	uc := NewCareerUsecase(&mockCareerRepo{}, &mockOrgRepo{}, nil, nil)

	_, err := uc.Get(context.Background(), "", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareerGet_NotFound(t *testing.T) {
	uc := NewCareerUsecase(&mockCareerRepo{getErr: repository.ErrNotFound}, &mockOrgRepo{}, nil, nil)

	_, err := uc.Get(context.Background(), career.NewNativeID(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCareerUpdate_StripsCallerIdentifiers(t *testing.T) {
	repo := &mockCareerRepo{getResult: career.Career{RecordID: career.NewNativeID(), LegacyID: career.NewLegacyID()}}
	uc := NewCareerUsecase(repo, &mockOrgRepo{}, nil, nil)

	_, err := uc.Update(context.Background(), repo.getResult.RecordID, map[string]any{
		"_id":              "attacker-chosen",
		"id":               "attacker-chosen",
		"recordID":         "attacker-chosen",
		"jobTitle":         "Renamed Role",
		"screeningSetting": career.SettingOnlyStrongFit,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updates))
	}
	p := repo.updates[0]
	if p.JobTitle == nil || *p.JobTitle != "Renamed Role" {
		t.Fatalf("jobTitle = %v", p.JobTitle)
	}
	// The deprecated unified setting must never flow into a partial update.
	if p.CVScreeningSetting != nil || p.AIScreeningSetting != nil {
		t.Fatalf("screeningSetting leaked into the partial: %+v", p)
	}
}

func TestCareerUpdate_UnknownFieldRejected(t *testing.T) {
	repo := &mockCareerRepo{}
	uc := NewCareerUsecase(repo, &mockOrgRepo{}, nil, nil)

	_, err := uc.Update(context.Background(), career.NewNativeID(), map[string]any{"orgId": "x"})
	if err == nil {
		t.Fatalf("unknown field must be rejected")
	}
	if len(repo.updates) != 0 {
		t.Fatalf("no update should be issued")
	}
}
