package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talentgate/internal/domain/career"
)

// Step is one screen of the posting form. Steps are ordered; a step is
// reachable only when every step before it validates.
type Step int

const (
	StepDetails Step = iota + 1
	StepCVScreening
	StepAIInterview
	StepReview

	firstStep = StepDetails
	lastStep  = StepReview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepCVScreening:
		return "cv screening"
	case StepAIInterview:
		return "ai interview"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrStepBlocked = errors.New("earlier steps are incomplete")
	ErrUnknownStep = errors.New("unknown step")
	ErrNotSaved    = errors.New("no draft has been saved")
)

// StepError reports which fields keep a step from validating.
type StepError struct {
	Step   Step
	Fields []string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q incomplete: %s", e.Step, strings.Join(e.Fields, ", "))
}

// FormData is everything the wizard collects across its steps.
type FormData struct {
	OrgID     string
	CreatedBy string

	JobTitle        string
	Description     string
	EmploymentType  string
	WorkSetup       string
	WorkSetupRemark string
	Location        string
	Country         string
	Province        string

	SalaryNegotiable bool
	MinimumSalary    *float64
	MaximumSalary    *float64
	RequireVideo     bool

	CVScreeningSetting string

	AIScreeningSetting    string
	Questions             []career.QuestionGroup
	PreScreeningQuestions []career.PreScreenQuestion
}

// Saver persists wizard drafts. The returned identifiers are whatever forms
// the backend assigned; either may be empty but not both.
type Saver interface {
	Create(ctx context.Context, payload map[string]any) (recordID, legacyID string, err error)
	Update(ctx context.Context, id string, payload map[string]any) error
}

// Wizard drives the multi-step posting form: validate the current step, save
// a draft, move on, and finally publish. The first save creates the record;
// every later save updates it under the identifier the backend returned.
type Wizard struct {
	saver Saver

	data    FormData
	step    Step
	savedID string
}

func New(saver Saver, data FormData) *Wizard {
	return &Wizard{saver: saver, data: data, step: firstStep}
}

func (w *Wizard) Step() Step      { return w.step }
func (w *Wizard) Data() FormData  { return w.data }
func (w *Wizard) SavedID() string { return w.savedID }

func (w *Wizard) SetData(data FormData) {
	w.data = data
}

// Validate checks a single step's fields against the collected data.
func (w *Wizard) Validate(step Step) error {
	var fields []string
	miss := func(name string, ok bool) {
		if !ok {
			fields = append(fields, name)
		}
	}

	switch step {
	case StepDetails:
		miss("jobTitle", strings.TrimSpace(w.data.JobTitle) != "")
		miss("description", strings.TrimSpace(w.data.Description) != "")
		miss("employmentType", validEmploymentType(w.data.EmploymentType))
		miss("workSetup", validWorkSetup(w.data.WorkSetup))
		miss("location", strings.TrimSpace(w.data.Location) != "")
		miss("minimumSalary", w.data.MinimumSalary == nil || *w.data.MinimumSalary >= 0)
		miss("maximumSalary", w.data.MaximumSalary == nil || *w.data.MaximumSalary >= 0)
		if career.ValidateSalaryRange(w.data.MinimumSalary, w.data.MaximumSalary) != nil {
			fields = append(fields, "salaryRange")
		}
	case StepCVScreening:
		miss("cvScreeningSetting", strings.TrimSpace(w.data.CVScreeningSetting) != "")
		if len(w.data.PreScreeningQuestions) > 0 {
			if career.ValidatePreScreenQuestions(w.data.PreScreeningQuestions) != nil {
				fields = append(fields, "preScreeningQuestions")
			}
		}
	case StepAIInterview:
		miss("aiScreeningSetting", strings.TrimSpace(w.data.AIScreeningSetting) != "")
		miss("questions", career.TotalQuestions(w.data.Questions) > 0)
	case StepReview:
		// Review adds nothing of its own; reachability already implies the
		// earlier steps validate.
	default:
		return ErrUnknownStep
	}

	if len(fields) > 0 {
		return &StepError{Step: step, Fields: fields}
	}
	return nil
}

// CanGoTo reports whether navigation to the target step is allowed: any
// visited-or-earlier step is always reachable, a later one only when every
// step before it validates.
func (w *Wizard) CanGoTo(target Step) bool {
	if target < firstStep || target > lastStep {
		return false
	}
	if target <= w.step {
		return true
	}
	for s := firstStep; s < target; s++ {
		if w.Validate(s) != nil {
			return false
		}
	}
	return true
}

func (w *Wizard) GoTo(target Step) error {
	if target < firstStep || target > lastStep {
		return ErrUnknownStep
	}
	if !w.CanGoTo(target) {
		return ErrStepBlocked
	}
	w.step = target
	return nil
}

// SaveAndContinue validates the current step, persists the draft, and
// advances. On the review step it only saves.
func (w *Wizard) SaveAndContinue(ctx context.Context) error {
	if err := w.Validate(w.step); err != nil {
		return err
	}
	if err := w.save(ctx, career.StatusDraft); err != nil {
		return err
	}
	if w.step < lastStep {
		w.step++
	}
	return nil
}

// Publish validates every step and saves the posting as active. The wizard
// must have reached the review step.
func (w *Wizard) Publish(ctx context.Context) error {
	if w.step != lastStep {
		return ErrStepBlocked
	}
	for s := firstStep; s <= lastStep; s++ {
		if err := w.Validate(s); err != nil {
			return err
		}
	}
	return w.save(ctx, career.StatusActive)
}

func (w *Wizard) save(ctx context.Context, status string) error {
	payload := w.payload(status)

	if w.savedID == "" {
		recordID, legacyID, err := w.saver.Create(ctx, payload)
		if err != nil {
			return err
		}
		if recordID != "" {
			w.savedID = recordID
		} else {
			w.savedID = legacyID
		}
		if w.savedID == "" {
			return ErrNotSaved
		}
		return nil
	}
	return w.saver.Update(ctx, w.savedID, payload)
}

// payload renders the form data as the untrusted-input map the career API
// accepts, so drafts pass through the same sanitization as direct calls.
func (w *Wizard) payload(status string) map[string]any {
	p := map[string]any{
		"orgID":            w.data.OrgID,
		"jobTitle":         w.data.JobTitle,
		"description":      w.data.Description,
		"location":         w.data.Location,
		"workSetup":        w.data.WorkSetup,
		"status":           status,
		"requireVideo":     w.data.RequireVideo,
		"salaryNegotiable": w.data.SalaryNegotiable,
		"questions":        questionPayload(w.data.Questions),
	}
	setIf := func(key, val string) {
		if val != "" {
			p[key] = val
		}
	}
	setIf("employmentType", w.data.EmploymentType)
	setIf("workSetupRemarks", w.data.WorkSetupRemark)
	setIf("country", w.data.Country)
	setIf("province", w.data.Province)
	setIf("cvScreeningSetting", w.data.CVScreeningSetting)
	setIf("aiScreeningSetting", w.data.AIScreeningSetting)
	setIf("createdBy", w.data.CreatedBy)

	if w.data.MinimumSalary != nil {
		p["minimumSalary"] = *w.data.MinimumSalary
	}
	if w.data.MaximumSalary != nil {
		p["maximumSalary"] = *w.data.MaximumSalary
	}
	if len(w.data.PreScreeningQuestions) > 0 {
		p["preScreeningQuestions"] = preScreenPayload(w.data.PreScreeningQuestions)
	}
	return p
}

func questionPayload(groups []career.QuestionGroup) []any {
	out := make([]any, 0, len(groups))
	for _, g := range groups {
		questions := make([]any, 0, len(g.Questions))
		for _, q := range g.Questions {
			questions = append(questions, map[string]any{"question": q.Question})
		}
		m := map[string]any{
			"category":  g.Category,
			"questions": questions,
		}
		if g.AskCount != nil {
			m["askCount"] = float64(*g.AskCount)
		}
		out = append(out, m)
	}
	return out
}

func preScreenPayload(questions []career.PreScreenQuestion) []any {
	out := make([]any, 0, len(questions))
	for _, q := range questions {
		options := make([]any, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, o)
		}
		out = append(out, map[string]any{
			"id":         q.ID,
			"type":       q.Type,
			"question":   q.Question,
			"options":    options,
			"minChecked": float64(q.MinChecked),
			"maxChecked": float64(q.MaxChecked),
			"rangeMin":   q.RangeMin,
			"rangeMax":   q.RangeMax,
		})
	}
	return out
}

func validEmploymentType(v string) bool {
	switch v {
	case career.EmploymentFullTime, career.EmploymentPartTime:
		return true
	default:
		return false
	}
}

func validWorkSetup(v string) bool {
	switch v {
	case career.WorkSetupRemote, career.WorkSetupOnsite, career.WorkSetupHybrid:
		return true
	default:
		return false
	}
}
