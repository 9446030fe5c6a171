package dto

import (
	"time"

	"talentgate/internal/domain/career"
)

// CareerResponse is the wire shape of a posting. Both identifier forms are
// echoed so clients can address the record either way.
type CareerResponse struct {
	RecordID string `json:"recordID"`
	ID       string `json:"id"`
	OrgID    string `json:"orgID"`

	JobTitle    string `json:"jobTitle"`
	Description string `json:"description"`

	Questions             []career.QuestionGroup     `json:"questions"`
	PreScreeningQuestions []career.PreScreenQuestion `json:"preScreeningQuestions,omitempty"`

	Location        string `json:"location"`
	Country         string `json:"country,omitempty"`
	Province        string `json:"province,omitempty"`
	WorkSetup       string `json:"workSetup"`
	WorkSetupRemark string `json:"workSetupRemarks,omitempty"`
	EmploymentType  string `json:"employmentType,omitempty"`

	CVScreeningSetting string `json:"cvScreeningSetting,omitempty"`
	AIScreeningSetting string `json:"aiScreeningSetting,omitempty"`

	RequireVideo     bool     `json:"requireVideo"`
	SalaryNegotiable bool     `json:"salaryNegotiable"`
	MinimumSalary    *float64 `json:"minimumSalary,omitempty"`
	MaximumSalary    *float64 `json:"maximumSalary,omitempty"`

	Status string `json:"status"`

	CreatedBy    string `json:"createdBy,omitempty"`
	LastEditedBy string `json:"lastEditedBy,omitempty"`

	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

func FromCareer(c career.Career) CareerResponse {
	return CareerResponse{
		RecordID:              c.RecordID,
		ID:                    c.LegacyID,
		OrgID:                 c.OrgID.String(),
		JobTitle:              c.JobTitle,
		Description:           c.Description,
		Questions:             c.Questions,
		PreScreeningQuestions: c.PreScreeningQuestions,
		Location:              c.Location,
		Country:               c.Country,
		Province:              c.Province,
		WorkSetup:             c.WorkSetup,
		WorkSetupRemark:       c.WorkSetupRemark,
		EmploymentType:        c.EmploymentType,
		CVScreeningSetting:    c.CVScreeningSetting,
		AIScreeningSetting:    c.AIScreeningSetting,
		RequireVideo:          c.RequireVideo,
		SalaryNegotiable:      c.SalaryNegotiable,
		MinimumSalary:         c.MinimumSalary,
		MaximumSalary:         c.MaximumSalary,
		Status:                c.Status,
		CreatedBy:             c.CreatedBy,
		LastEditedBy:          c.LastEditedBy,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
		LastActivityAt:        c.LastActivityAt,
	}
}
