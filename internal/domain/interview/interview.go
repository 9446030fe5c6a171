package interview

import "time"

// Interview is one applicant's application/interview record for a career.
// Career context (title, description, screening setting) is denormalized onto
// the record at creation so screening can run from the record alone.
type Interview struct {
	RecordID string `json:"interviewID"`
	Email    string `json:"email"`

	CareerLegacyID string `json:"id"`

	Name             string `json:"name"`
	JobTitle         string `json:"jobTitle"`
	Description      string `json:"description"`
	ScreeningSetting string `json:"screeningSetting"`

	CVStatus          string  `json:"cvStatus"`
	StateClass        string  `json:"stateClass"`
	CVSettingResult   string  `json:"cvSettingResult"`
	CVScreeningReason string  `json:"cvScreeningReason"`
	Confidence        float64 `json:"confidence"`
	JobFitScore       float64 `json:"jobFitScore"`

	CurrentStep string `json:"currentStep"`
	Status      string `json:"status"`

	PreScreenAnswers map[string]any `json:"preScreenAnswers,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CVSection is one named block of an applicant's parsed CV.
type CVSection struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// CV is the parsed digital CV stored per applicant email.
type CV struct {
	Email     string      `json:"email"`
	DigitalCV []CVSection `json:"digitalCV"`
}

// HistoryEntry is one append-only audit record for an interview.
type HistoryEntry struct {
	ID                int64          `json:"-"`
	InterviewRecordID string         `json:"interviewID"`
	Payload           map[string]any `json:"payload"`
	CreatedAt         time.Time      `json:"createdAt"`
}
