package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"talentgate/internal/ai/gemini"
	"talentgate/internal/domain/interview"
	"talentgate/internal/domain/screening"
	"talentgate/internal/pkg/logger"
	"talentgate/internal/repository"

	"go.uber.org/zap"
)

const screeningLockTTL = 60 * time.Second

// ContentGenerator produces a textual completion for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ScreeningLocker serializes duplicate screening runs per interview. The
// Redis cache satisfies it; without Redis screening degrades to
// last-write-wins.
type ScreeningLocker interface {
	Available() bool
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// ScreeningNotifier is told when a verdict lands so connected recruiter
// clients can refresh.
type ScreeningNotifier interface {
	ScreeningCompleted(interviewID string, out screening.Outcome)
}

// Mailer sends applicant-facing notification mail. No implementation is wired
// at the moment; outbound mail for screening verdicts is switched off.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// ScreeningParams identifies the interview to screen. In test mode the
// caller supplies fixtures and no verdict is persisted.
type ScreeningParams struct {
	InterviewID string
	TestMode    bool

	TestInterview *interview.Interview
	TestCV        *interview.CV
}

type ScreeningUsecase interface {
	ScreenCV(ctx context.Context, p ScreeningParams) (screening.Outcome, error)
}

type Screening struct {
	interviews repository.InterviewRepository
	cvs        repository.CVRepository
	settings   repository.SettingsRepository
	generator  ContentGenerator
	locker     ScreeningLocker
	notifier   ScreeningNotifier
	mailer     Mailer
	logger     *zap.Logger
}

func NewScreeningUsecase(
	interviews repository.InterviewRepository,
	cvs repository.CVRepository,
	settings repository.SettingsRepository,
	generator ContentGenerator,
	locker ScreeningLocker,
	notifier ScreeningNotifier,
	logger *zap.Logger,
) *Screening {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screening{
		interviews: interviews,
		cvs:        cvs,
		settings:   settings,
		generator:  generator,
		locker:     locker,
		notifier:   notifier,
		logger:     logger,
	}
}

// WithMailer enables outbound verdict mail. Bootstrap does not call this yet;
// mail stays off until a provider is picked.
func (u *Screening) WithMailer(m Mailer) *Screening {
	u.mailer = m
	return u
}

// ScreenCV runs the CV screening pipeline for one interview: load the record
// and the applicant's parsed CV, build the prompt, ask the model for a
// verdict, map it through the career's screening-setting gate and persist the
// outcome. An applicant without a CV short-circuits to the terminal no-CV
// state without calling the model.
func (u *Screening) ScreenCV(ctx context.Context, p ScreeningParams) (screening.Outcome, error) {
	iv, err := u.loadInterview(ctx, p)
	if err != nil {
		return screening.Outcome{}, err
	}

	cv, found, err := u.loadCV(ctx, p, iv.Email)
	if err != nil {
		return screening.Outcome{}, err
	}
	if !found {
		out := screening.NoCVOutcome()
		if p.TestMode {
			out.TestMode = true
			return out, nil
		}
		if err := u.interviews.MarkNoCV(ctx, iv.RecordID); err != nil {
			u.logger.Error("mark interview no-cv", zap.Error(err))
			return screening.Outcome{}, ErrInternal
		}
		u.notify(iv.RecordID, out)
		return out, nil
	}
	if cv.DigitalCV == nil {
		return screening.Outcome{}, ErrInvalidCVData
	}

	operatorPrompt, err := u.settings.GetScreeningPrompt(ctx)
	if err != nil {
		u.logger.Error("load screening prompt", zap.Error(err))
		return screening.Outcome{}, ErrInternal
	}

	if !p.TestMode && u.locker != nil && u.locker.Available() {
		lockKey := "screening:lock:" + iv.RecordID
		acquired, err := u.locker.SetIfNotExists(ctx, lockKey, "1", screeningLockTTL)
		if err != nil {
			u.logger.Warn("screening lock unavailable, proceeding unlocked", zap.Error(err))
		} else if !acquired {
			return screening.Outcome{}, ErrScreeningInProgress
		} else {
			defer func() {
				if err := u.locker.Delete(context.WithoutCancel(ctx), lockKey); err != nil {
					u.logger.Warn("release screening lock", zap.Error(err))
				}
			}()
		}
	}

	prompt := buildScreeningPrompt(iv, cv.DigitalCV, operatorPrompt)

	raw, err := u.generator.GenerateContent(ctx, prompt)
	if err != nil {
		u.logger.Error("screening generation failed", zap.Error(err), zap.String("interviewID", iv.RecordID))
		return screening.Outcome{}, fmt.Errorf("%w: %v", ErrScreeningFailed, err)
	}

	res, err := parseScreeningResponse(raw)
	if err != nil {
		u.logger.Error("screening response unparseable", zap.Error(err), zap.String("response", logger.TruncateForLog(raw, 500)))
		return screening.Outcome{}, fmt.Errorf("%w: %v", ErrScreeningFailed, err)
	}

	out := screening.Decide(res, iv.ScreeningSetting)

	if p.TestMode {
		out.TestMode = true
		return out, nil
	}

	if err := u.interviews.ApplyScreening(ctx, iv.RecordID, out); err != nil {
		u.logger.Error("persist screening outcome", zap.Error(err))
		return screening.Outcome{}, ErrInternal
	}
	u.notify(iv.RecordID, out)
	u.mailVerdict(ctx, iv, out)

	return out, nil
}

func (u *Screening) loadInterview(ctx context.Context, p ScreeningParams) (interview.Interview, error) {
	if p.TestMode {
		if p.TestInterview == nil {
			return interview.Interview{}, ErrInterviewNotFound
		}
		return *p.TestInterview, nil
	}

	iv, err := u.interviews.Get(ctx, p.InterviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return interview.Interview{}, ErrInterviewNotFound
		}
		u.logger.Error("load interview for screening", zap.Error(err))
		return interview.Interview{}, ErrInternal
	}
	return iv, nil
}

func (u *Screening) loadCV(ctx context.Context, p ScreeningParams, email string) (interview.CV, bool, error) {
	if p.TestMode {
		if p.TestCV == nil {
			return interview.CV{}, false, nil
		}
		return *p.TestCV, true, nil
	}

	cv, err := u.cvs.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return interview.CV{}, false, nil
		}
		u.logger.Error("load applicant cv", zap.Error(err))
		return interview.CV{}, false, ErrInternal
	}
	return cv, true, nil
}

func (u *Screening) notify(interviewID string, out screening.Outcome) {
	if u.notifier != nil {
		u.notifier.ScreeningCompleted(interviewID, out)
	}
}

func (u *Screening) mailVerdict(ctx context.Context, iv interview.Interview, out screening.Outcome) {
	if u.mailer == nil {
		return
	}
	subject := "Application update: " + iv.JobTitle
	body := "<p>Hi " + iv.Name + ",</p><p>Your application for " + iv.JobTitle +
		" has moved to: " + out.CurrentStep + ".</p>"
	if err := u.mailer.Send(ctx, iv.Email, subject, body); err != nil {
		u.logger.Warn("send screening mail", zap.Error(err))
	}
}

// buildScreeningPrompt assembles the screening prompt: fixed framing, the
// career context, the applicant's CV sections, the operator-configured
// instructions, then the JSON output directive.
func buildScreeningPrompt(iv interview.Interview, sections []interview.CVSection, operatorPrompt string) string {
	var cv strings.Builder
	for _, s := range sections {
		cv.WriteString(s.Name)
		cv.WriteString("\n")
		cv.WriteString(s.Content)
		cv.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString("You are an expert recruiter screening a candidate's CV against a job posting.\n\n")
	b.WriteString("Job Title: " + iv.JobTitle + "\n\n")
	b.WriteString("Job Description:\n" + iv.Description + "\n\n")
	b.WriteString("Candidate Name: " + iv.Name + "\n\n")
	b.WriteString("Candidate CV:\n" + cv.String() + "\n")
	if operatorPrompt != "" {
		b.WriteString("\nAdditional screening instructions:\n" + operatorPrompt + "\n")
	}
	b.WriteString("\nRespond with only a JSON object of the form " +
		`{"result": string, "reason": string, "confidence": number, "jobFitScore": number}` +
		". The result field must be exactly one of: " + strings.Join(screening.Labels, ", ") +
		". The reason must be a concise justification. Confidence and jobFitScore are numbers from 0 to 100.")
	return b.String()
}

// parseScreeningResponse decodes the model's verdict leniently: numeric
// fields may arrive as strings and unknown fields are ignored.
func parseScreeningResponse(raw string) (screening.LLMResult, error) {
	cleaned := gemini.ExtractJSON(raw)

	var loose map[string]any
	if err := json.Unmarshal([]byte(cleaned), &loose); err != nil {
		return screening.LLMResult{}, fmt.Errorf("decode screening response: %w", err)
	}

	res := screening.LLMResult{
		Result:      looseString(loose["result"]),
		Reason:      looseString(loose["reason"]),
		Confidence:  looseNumber(loose["confidence"]),
		JobFitScore: looseNumber(loose["jobFitScore"]),
	}
	if res.Result == "" {
		return screening.LLMResult{}, errors.New("screening response has no result label")
	}
	return res, nil
}

func looseString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func looseNumber(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
