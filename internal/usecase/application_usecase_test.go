package usecase

import (
	"context"
	"errors"
	"testing"

	"talentgate/internal/domain/interview"
	"talentgate/internal/repository"
	"talentgate/internal/sanitize"
)

func manageFixture() (interview.Interview, ManageInput) {
	iv := interview.Interview{
		RecordID:       "64f1c2d3e4a5b6c7d8e9f0a1",
		Email:          "applicant@example.com",
		CareerLegacyID: "career-guid-1",
	}
	step := "Pre-Screening"
	return iv, ManageInput{
		InterviewID: iv.RecordID,
		Email:       iv.Email,
		Update:      &ApplicationUpdate{CurrentStep: &step},
		Transaction: map[string]any{"action": "step-advanced"},
	}
}

func TestApplicationManage_MissingArgs(t *testing.T) {
	uc := NewApplicationUsecase(&mockInterviewRepo{}, &mockCareerRepo{}, &mockHistoryRepo{}, nil)

	for _, in := range []ManageInput{
		{},
		{InterviewID: "x", Email: "a@b.c"},
		{InterviewID: "x", Update: &ApplicationUpdate{}},
	} {
		if err := uc.Manage(context.Background(), in); !errors.Is(err, ErrInterviewNotFound) {
			t.Fatalf("expected ErrInterviewNotFound for %+v, got %v", in, err)
		}
	}
}

func TestApplicationManage_InterviewNotFound(t *testing.T) {
	uc := NewApplicationUsecase(&mockInterviewRepo{getErr: repository.ErrNotFound}, &mockCareerRepo{}, &mockHistoryRepo{}, nil)

	_, in := manageFixture()
	if err := uc.Manage(context.Background(), in); !errors.Is(err, ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestApplicationManage_MergeAndSideEffects(t *testing.T) {
	iv, in := manageFixture()
	interviews := &mockInterviewRepo{iv: iv}
	careers := &mockCareerRepo{}
	history := &mockHistoryRepo{}
	uc := NewApplicationUsecase(interviews, careers, history, nil)

	if err := uc.Manage(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(interviews.updates) != 1 {
		t.Fatalf("expected one merge, got %d", len(interviews.updates))
	}
	if len(history.appended) != 1 {
		t.Fatalf("transaction should be appended to history")
	}
	if len(careers.touched) != 1 || careers.touched[0] != iv.CareerLegacyID {
		t.Fatalf("career activity should be touched, got %v", careers.touched)
	}
}

func TestApplicationManage_SanitizeFailureAbortsAllWrites(t *testing.T) {
	iv, in := manageFixture()
	in.Update.PreScreenAnswers = map[string]any{
		"salary": map[string]any{"min": "a lot"},
	}
	in.Update.HasAnswers = true

	interviews := &mockInterviewRepo{iv: iv}
	careers := &mockCareerRepo{}
	history := &mockHistoryRepo{}
	uc := NewApplicationUsecase(interviews, careers, history, nil)

	err := uc.Manage(context.Background(), in)
	var valErr *sanitize.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(interviews.updates) != 0 || len(history.appended) != 0 || len(careers.touched) != 0 {
		t.Fatalf("a sanitize failure must abort every write")
	}
}

func TestApplicationManage_AnswersSanitizedBeforeMerge(t *testing.T) {
	iv, in := manageFixture()
	in.Update.PreScreenAnswers = map[string]any{
		"q1":     "<script>x</script>ten years",
		"salary": map[string]any{"min": "40000"},
	}
	in.Update.HasAnswers = true

	interviews := &mockInterviewRepo{iv: iv}
	uc := NewApplicationUsecase(interviews, &mockCareerRepo{}, &mockHistoryRepo{}, nil)

	if err := uc.Manage(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	answers := interviews.updates[0].PreScreenAnswers
	if answers["q1"] != "ten years" {
		t.Fatalf("q1 = %q", answers["q1"])
	}
	if answers["salary"].(map[string]any)["min"] != 40000.0 {
		t.Fatalf("salary.min not coerced: %v", answers["salary"])
	}
}

func TestApplicationManage_DeletionNotImplemented(t *testing.T) {
	iv, in := manageFixture()
	in.Update = &ApplicationUpdate{ForDeletion: true}

	interviews := &mockInterviewRepo{iv: iv}
	careers := &mockCareerRepo{}
	history := &mockHistoryRepo{}
	uc := NewApplicationUsecase(interviews, careers, history, nil)

	err := uc.Manage(context.Background(), in)
	if !errors.Is(err, ErrDeletionNotImplemented) {
		t.Fatalf("expected ErrDeletionNotImplemented, got %v", err)
	}
	if len(interviews.updates) != 0 {
		t.Fatalf("deletion request must not merge fields")
	}
	// The audit append and the activity touch are independent of the merge.
	if len(history.appended) != 1 {
		t.Fatalf("history should still be appended")
	}
	if len(careers.touched) != 1 {
		t.Fatalf("career activity should still be touched")
	}
}

func TestApplicationManage_HistoryFailureSurfacesButTouchStillRuns(t *testing.T) {
	iv, in := manageFixture()
	interviews := &mockInterviewRepo{iv: iv}
	careers := &mockCareerRepo{}
	history := &mockHistoryRepo{err: errors.New("disk full")}
	uc := NewApplicationUsecase(interviews, careers, history, nil)

	err := uc.Manage(context.Background(), in)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(careers.touched) != 1 {
		t.Fatalf("activity touch must not depend on the history append")
	}
}
