package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentgate/internal/repository"
	"talentgate/internal/sanitize"

	"go.uber.org/zap"
)

// ApplicationUpdate is the body of a manage-application request. ForDeletion
// is accepted on the wire but deletion itself is not implemented.
type ApplicationUpdate struct {
	ForDeletion      bool
	PreScreenAnswers map[string]any
	HasAnswers       bool
	CurrentStep      *string
	Status           *string
	Name             *string
}

// ManageInput identifies the interview being updated and carries the update
// body plus an optional audit transaction to append to the history log.
type ManageInput struct {
	InterviewID string
	Email       string
	Update      *ApplicationUpdate
	Transaction map[string]any
}

type ApplicationUsecase interface {
	Manage(ctx context.Context, in ManageInput) error
}

type Application struct {
	interviews repository.InterviewRepository
	careers    repository.CareerRepository
	history    repository.HistoryRepository
	logger     *zap.Logger
}

func NewApplicationUsecase(interviews repository.InterviewRepository, careers repository.CareerRepository, history repository.HistoryRepository, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Application{interviews: interviews, careers: careers, history: history, logger: logger}
}

// Manage merges an applicant-scoped update into an interview record. The
// history append and the career activity touch run regardless of whether the
// merge itself succeeded; a pre-screen answer that fails sanitization aborts
// the whole request before any write.
func (u *Application) Manage(ctx context.Context, in ManageInput) error {
	if in.InterviewID == "" || in.Email == "" || in.Update == nil {
		return ErrInterviewNotFound
	}

	iv, err := u.interviews.GetForApplicant(ctx, in.InterviewID, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInterviewNotFound
		}
		u.logger.Error("load interview", zap.Error(err))
		return ErrInternal
	}

	var mergeErr error
	if in.Update.ForDeletion {
		mergeErr = ErrDeletionNotImplemented
	} else {
		partial := repository.InterviewPartial{
			CurrentStep: in.Update.CurrentStep,
			Status:      in.Update.Status,
		}
		if in.Update.Name != nil {
			clean := sanitize.StripTags(*in.Update.Name)
			partial.Name = &clean
		}
		if in.Update.HasAnswers {
			answers, err := sanitize.Answers(in.Update.PreScreenAnswers)
			if err != nil {
				return err
			}
			partial.PreScreenAnswers = answers
		}

		if !partial.Empty() {
			if err := u.interviews.UpdatePartial(ctx, in.InterviewID, in.Email, partial); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					mergeErr = ErrInterviewNotFound
				} else {
					u.logger.Error("update interview", zap.Error(err))
					mergeErr = ErrInternal
				}
			}
		}
	}

	now := time.Now().UTC()
	if in.Transaction != nil {
		if err := u.history.Append(ctx, iv.RecordID, in.Transaction, now); err != nil {
			u.logger.Error("append interview history", zap.Error(err))
			if mergeErr == nil {
				mergeErr = fmt.Errorf("%w: history append failed", ErrInternal)
			}
		}
	}
	if err := u.careers.TouchActivity(ctx, iv.CareerLegacyID, now); err != nil {
		u.logger.Warn("touch career activity", zap.Error(err), zap.String("careerID", iv.CareerLegacyID))
	}

	return mergeErr
}
