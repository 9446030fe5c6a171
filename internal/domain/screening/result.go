package screening

// Result labels the model is instructed to choose from.
const (
	ResultNoFit            = "No Fit"
	ResultBadFit           = "Bad Fit"
	ResultGoodFit          = "Good Fit"
	ResultStrongFit        = "Strong Fit"
	ResultIneligibleCV     = "Ineligible CV"
	ResultInsufficientData = "Insufficient Data"
)

// Labels lists every valid screening-result label.
var Labels = []string{
	ResultNoFit,
	ResultBadFit,
	ResultGoodFit,
	ResultStrongFit,
	ResultIneligibleCV,
	ResultInsufficientData,
}

// Coarse visual classification buckets.
const (
	StateMuted    = "state-muted"
	StateRejected = "state-rejected"
	StateGood     = "state-good"
	StateAccepted = "state-accepted"
)

const (
	SettingResultPassed = "Passed"
	SettingResultFailed = "Failed"
)

// Pipeline step labels and the statuses the screening gate can assign.
const (
	StepCVScreening = "CV Screening"
	StepAIInterview = "AI Interview"

	StatusForInterview      = "For Interview"
	StatusFailedCVScreening = "Failed CV Screening"
)

// Screening-setting gates an operator can configure per career.
const (
	SettingOnlyStrongFit   = "Only Strong Fit"
	SettingGoodFitAndAbove = "Good Fit and above"
)

// StatusNoCV is the terminal sentinel written when the applicant has no CV.
const (
	StatusNoCV = "No CV"
	ReasonNoCV = "Applicant has no CV uploaded."
)

// LLMResult is the parsed structured response from the screening prompt.
type LLMResult struct {
	Result      string  `json:"result"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
	JobFitScore float64 `json:"jobFitScore"`
}

// Outcome is the full screening verdict written back onto the interview
// record. Status is only set when a screening-setting gate decides it.
type Outcome struct {
	CVStatus          string  `json:"cvStatus"`
	StateClass        string  `json:"stateClass"`
	CVSettingResult   string  `json:"cvSettingResult"`
	CVScreeningReason string  `json:"cvScreeningReason"`
	CurrentStep       string  `json:"currentStep,omitempty"`
	Confidence        float64 `json:"confidence"`
	JobFitScore       float64 `json:"jobFitScore"`
	Status            string  `json:"status,omitempty"`
	TestMode          bool    `json:"testMode,omitempty"`
}

// NoCVOutcome is the terminal state for applicants without an uploaded CV.
func NoCVOutcome() Outcome {
	return Outcome{
		CVStatus:          StatusNoCV,
		StateClass:        StateMuted,
		CVSettingResult:   "",
		CVScreeningReason: ReasonNoCV,
	}
}

// Decide maps an LLM result to an outcome: first the base
// classification table, then the career's screening-setting gate, which may
// override the classification (never the result label itself).
func Decide(res LLMResult, screeningSetting string) Outcome {
	out := Outcome{
		CVStatus:          res.Result,
		StateClass:        StateAccepted,
		CVSettingResult:   "",
		CVScreeningReason: res.Reason,
		CurrentStep:       StepCVScreening,
		Confidence:        res.Confidence,
		JobFitScore:       res.JobFitScore,
	}

	switch res.Result {
	case ResultNoFit, ResultBadFit:
		out.StateClass = StateRejected
		out.CVSettingResult = SettingResultFailed
	case ResultGoodFit:
		out.StateClass = StateGood
		out.CVSettingResult = SettingResultPassed
	case ResultStrongFit:
		out.StateClass = StateAccepted
		out.CVSettingResult = SettingResultPassed
	case ResultIneligibleCV, ResultInsufficientData:
		out.StateClass = StateRejected
		out.CVSettingResult = SettingResultFailed
	}

	switch screeningSetting {
	case SettingOnlyStrongFit:
		if res.Result == ResultStrongFit {
			promote(&out)
		} else {
			reject(&out)
		}
	case SettingGoodFitAndAbove:
		if res.Result == ResultGoodFit || res.Result == ResultStrongFit {
			promote(&out)
		} else {
			reject(&out)
		}
	}

	return out
}

func promote(out *Outcome) {
	out.StateClass = StateAccepted
	out.CVSettingResult = SettingResultPassed
	out.CurrentStep = StepAIInterview
	out.Status = StatusForInterview
}

func reject(out *Outcome) {
	out.StateClass = StateRejected
	out.CVSettingResult = SettingResultFailed
	out.Status = StatusFailedCVScreening
}
