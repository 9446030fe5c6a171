package career

import (
	"errors"
	"fmt"
)

// Pre-screening question input kinds.
const (
	QuestionDropdown    = "dropdown"
	QuestionCheckboxes  = "checkboxes"
	QuestionRange       = "range"
	QuestionShortAnswer = "short-answer"
	QuestionLongAnswer  = "long-answer"
)

var (
	ErrUnknownQuestionType = errors.New("unknown pre-screening question type")
	ErrCheckboxBounds      = errors.New("checkbox bounds must satisfy 0 <= min <= max <= len(options)")
)

// PreScreenQuestion is a typed input definition shown to applicants before
// the interview. Dropdown and checkboxes carry an ordered option list;
// checkboxes additionally bound how many options may be selected; range
// carries numeric bounds.
type PreScreenQuestion struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`

	MinChecked int `json:"minChecked,omitempty"`
	MaxChecked int `json:"maxChecked,omitempty"`

	RangeMin float64 `json:"rangeMin,omitempty"`
	RangeMax float64 `json:"rangeMax,omitempty"`
}

// NewPreScreenQuestion validates the definition before it can enter a career
// record. Checkbox bounds must satisfy 0 <= min <= max <= len(options), and
// both must be zero when there are no options.
func NewPreScreenQuestion(q PreScreenQuestion) (PreScreenQuestion, error) {
	if err := q.Validate(); err != nil {
		return PreScreenQuestion{}, err
	}
	return q, nil
}

func (q PreScreenQuestion) Validate() error {
	switch q.Type {
	case QuestionDropdown, QuestionShortAnswer, QuestionLongAnswer:
		return nil
	case QuestionRange:
		if q.RangeMin > q.RangeMax {
			return fmt.Errorf("question %q: range min %v exceeds max %v", q.ID, q.RangeMin, q.RangeMax)
		}
		return nil
	case QuestionCheckboxes:
		if len(q.Options) == 0 {
			if q.MinChecked != 0 || q.MaxChecked != 0 {
				return fmt.Errorf("question %q: %w", q.ID, ErrCheckboxBounds)
			}
			return nil
		}
		if q.MinChecked < 0 || q.MinChecked > q.MaxChecked || q.MaxChecked > len(q.Options) {
			return fmt.Errorf("question %q: %w", q.ID, ErrCheckboxBounds)
		}
		return nil
	default:
		return fmt.Errorf("question %q: %w: %q", q.ID, ErrUnknownQuestionType, q.Type)
	}
}

// ValidatePreScreenQuestions checks every definition in the list.
func ValidatePreScreenQuestions(qs []PreScreenQuestion) error {
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
