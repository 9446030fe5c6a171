package career

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
)

const (
	WorkSetupRemote = "Fully Remote"
	WorkSetupOnsite = "Onsite"
	WorkSetupHybrid = "Hybrid"
)

const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
)

// Screening settings shared by the CV and AI interview stages. An empty
// setting means no automatic promotion.
const (
	SettingGoodFitAndAbove = "Good Fit and above"
	SettingOnlyStrongFit   = "Only Strong Fit"
	SettingNoAutoPromotion = "No Automatic Promotion"
)

var ErrSalaryRangeInverted = errors.New("minimum salary must not exceed maximum salary")

// InterviewQuestion is a single generated or hand-written interview question.
type InterviewQuestion struct {
	Question string `json:"question"`
}

// QuestionGroup is an ordered category of interview questions. AskCount, when
// set, limits how many of the group's questions are asked in one interview.
type QuestionGroup struct {
	Category  string              `json:"category"`
	AskCount  *int                `json:"askCount,omitempty"`
	Questions []InterviewQuestion `json:"questions"`
}

func (g QuestionGroup) HasQuestions() bool {
	return len(g.Questions) > 0
}

// TotalQuestions sums the questions across all groups.
func TotalQuestions(groups []QuestionGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Questions)
	}
	return total
}

// Career is a job posting. Both identifier forms are stored: RecordID is the
// service-native 24-hex id, LegacyID the opaque guid older records carry.
type Career struct {
	RecordID string `json:"recordID"`
	LegacyID string `json:"id"`

	OrgID uuid.UUID `json:"orgID"`

	JobTitle    string `json:"jobTitle"`
	Description string `json:"description"`

	Questions             []QuestionGroup     `json:"questions"`
	PreScreeningQuestions []PreScreenQuestion `json:"preScreeningQuestions,omitempty"`

	Location        string `json:"location"`
	Country         string `json:"country"`
	Province        string `json:"province"`
	WorkSetup       string `json:"workSetup"`
	WorkSetupRemark string `json:"workSetupRemarks"`
	EmploymentType  string `json:"employmentType"`

	CVScreeningSetting string `json:"cvScreeningSetting"`
	AIScreeningSetting string `json:"aiScreeningSetting"`

	RequireVideo     bool     `json:"requireVideo"`
	SalaryNegotiable bool     `json:"salaryNegotiable"`
	MinimumSalary    *float64 `json:"minimumSalary,omitempty"`
	MaximumSalary    *float64 `json:"maximumSalary,omitempty"`

	Status string `json:"status"`

	CreatedBy    string `json:"createdBy"`
	LastEditedBy string `json:"lastEditedBy"`

	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

// ValidateSalaryRange enforces min <= max when both bounds are present.
func ValidateSalaryRange(min, max *float64) error {
	if min != nil && max != nil && *min > *max {
		return ErrSalaryRangeInverted
	}
	return nil
}
