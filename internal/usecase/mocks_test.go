package usecase

import (
	"context"
	"time"

	"talentgate/internal/domain/career"
	"talentgate/internal/domain/interview"
	"talentgate/internal/domain/screening"
	"talentgate/internal/domain/user"
	"talentgate/internal/repository"

	"github.com/google/uuid"
)

type mockCareerRepo struct {
	created   []career.Career
	createErr error

	getResult career.Career
	getErr    error

	updates   []repository.CareerPartial
	updateIDs []career.RecordID
	updateErr error

	activeCount int
	countErr    error

	touched  []string
	touchErr error
}

func (m *mockCareerRepo) Create(_ context.Context, c career.Career) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, c)
	return nil
}

func (m *mockCareerRepo) Get(_ context.Context, _ career.RecordID, _ *uuid.UUID) (career.Career, error) {
	return m.getResult, m.getErr
}

func (m *mockCareerRepo) UpdatePartial(_ context.Context, id career.RecordID, p repository.CareerPartial) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updateIDs = append(m.updateIDs, id)
	m.updates = append(m.updates, p)
	return nil
}

func (m *mockCareerRepo) CountActiveByOrg(context.Context, uuid.UUID) (int, error) {
	return m.activeCount, m.countErr
}

func (m *mockCareerRepo) TouchActivity(_ context.Context, legacyID string, _ time.Time) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.touched = append(m.touched, legacyID)
	return nil
}

type mockOrgRepo struct {
	org repository.Organization
	err error
}

func (m *mockOrgRepo) GetWithPlan(context.Context, uuid.UUID) (repository.Organization, error) {
	return m.org, m.err
}

type mockInterviewRepo struct {
	iv     interview.Interview
	getErr error

	updates   []repository.InterviewPartial
	updateErr error

	markedNoCV []string
	markErr    error

	applied    []screening.Outcome
	appliedIDs []string
	applyErr   error
}

func (m *mockInterviewRepo) Get(_ context.Context, _ string) (interview.Interview, error) {
	return m.iv, m.getErr
}

func (m *mockInterviewRepo) GetForApplicant(_ context.Context, _, _ string) (interview.Interview, error) {
	return m.iv, m.getErr
}

func (m *mockInterviewRepo) UpdatePartial(_ context.Context, _, _ string, p repository.InterviewPartial) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, p)
	return nil
}

func (m *mockInterviewRepo) MarkNoCV(_ context.Context, recordID string) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.markedNoCV = append(m.markedNoCV, recordID)
	return nil
}

func (m *mockInterviewRepo) ApplyScreening(_ context.Context, recordID string, out screening.Outcome) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.appliedIDs = append(m.appliedIDs, recordID)
	m.applied = append(m.applied, out)
	return nil
}

type mockCVRepo struct {
	cv  interview.CV
	err error
}

func (m *mockCVRepo) GetByEmail(context.Context, string) (interview.CV, error) {
	return m.cv, m.err
}

type mockSettingsRepo struct {
	prompt  string
	getErr  error
	saved   []string
	saveErr error
}

func (m *mockSettingsRepo) GetScreeningPrompt(context.Context) (string, error) {
	return m.prompt, m.getErr
}

func (m *mockSettingsRepo) SetScreeningPrompt(_ context.Context, prompt string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, prompt)
	return nil
}

type mockHistoryRepo struct {
	appended []map[string]any
	err      error
}

func (m *mockHistoryRepo) Append(_ context.Context, _ string, payload map[string]any, _ time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, payload)
	return nil
}

type mockUserRepo struct {
	users map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]user.User{}}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	m.users[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, bool, error) {
	u, ok := m.users[email]
	return u, ok, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, bool, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeLocker struct {
	available bool
	acquired  bool
	setErr    error
	released  []string
}

func (f *fakeLocker) Available() bool { return f.available }

func (f *fakeLocker) SetIfNotExists(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	return f.acquired, f.setErr
}

func (f *fakeLocker) Delete(_ context.Context, keys ...string) error {
	f.released = append(f.released, keys...)
	return nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) ScreeningCompleted(interviewID string, _ screening.Outcome) {
	f.events = append(f.events, interviewID)
}
