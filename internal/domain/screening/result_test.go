package screening

import "testing"

func TestDecide_BaseClassification(t *testing.T) {
	cases := []struct {
		result     string
		stateClass string
		setting    string // setting result, not the gate
	}{
		{ResultNoFit, StateRejected, SettingResultFailed},
		{ResultBadFit, StateRejected, SettingResultFailed},
		{ResultGoodFit, StateGood, SettingResultPassed},
		{ResultStrongFit, StateAccepted, SettingResultPassed},
		{ResultIneligibleCV, StateRejected, SettingResultFailed},
		{ResultInsufficientData, StateRejected, SettingResultFailed},
	}

	for _, tc := range cases {
		out := Decide(LLMResult{Result: tc.result, Reason: "r", Confidence: 80, JobFitScore: 70}, "")
		if out.CVStatus != tc.result {
			t.Fatalf("%s: cvStatus = %q, want %q", tc.result, out.CVStatus, tc.result)
		}
		if out.StateClass != tc.stateClass {
			t.Fatalf("%s: stateClass = %q, want %q", tc.result, out.StateClass, tc.stateClass)
		}
		if out.CVSettingResult != tc.setting {
			t.Fatalf("%s: cvSettingResult = %q, want %q", tc.result, out.CVSettingResult, tc.setting)
		}
		if out.CurrentStep != StepCVScreening {
			t.Fatalf("%s: currentStep = %q, want %q", tc.result, out.CurrentStep, StepCVScreening)
		}
		if out.Status != "" {
			t.Fatalf("%s: without a gate no status should be assigned, got %q", tc.result, out.Status)
		}
		if out.Confidence != 80 || out.JobFitScore != 70 {
			t.Fatalf("%s: scores not carried through", tc.result)
		}
	}
}

func TestDecide_UnknownLabelKeepsDefaultState(t *testing.T) {
	out := Decide(LLMResult{Result: "Something Else"}, "")
	if out.StateClass != StateAccepted {
		t.Fatalf("stateClass = %q, want default %q", out.StateClass, StateAccepted)
	}
	if out.CVSettingResult != "" {
		t.Fatalf("cvSettingResult = %q, want empty", out.CVSettingResult)
	}
}

func TestDecide_OnlyStrongFitGate(t *testing.T) {
	out := Decide(LLMResult{Result: ResultStrongFit}, SettingOnlyStrongFit)
	if out.CurrentStep != StepAIInterview || out.Status != StatusForInterview {
		t.Fatalf("strong fit should promote, got step=%q status=%q", out.CurrentStep, out.Status)
	}
	if out.StateClass != StateAccepted || out.CVSettingResult != SettingResultPassed {
		t.Fatalf("promotion should pass, got class=%q result=%q", out.StateClass, out.CVSettingResult)
	}

	out = Decide(LLMResult{Result: ResultGoodFit}, SettingOnlyStrongFit)
	if out.Status != StatusFailedCVScreening {
		t.Fatalf("good fit under only-strong-fit should fail, got status=%q", out.Status)
	}
	if out.StateClass != StateRejected || out.CVSettingResult != SettingResultFailed {
		t.Fatalf("rejection should fail, got class=%q result=%q", out.StateClass, out.CVSettingResult)
	}
	if out.CurrentStep != StepCVScreening {
		t.Fatalf("rejection must not advance the step, got %q", out.CurrentStep)
	}
}

func TestDecide_GoodFitAndAboveGate(t *testing.T) {
	for _, label := range []string{ResultGoodFit, ResultStrongFit} {
		out := Decide(LLMResult{Result: label}, SettingGoodFitAndAbove)
		if out.Status != StatusForInterview || out.CurrentStep != StepAIInterview {
			t.Fatalf("%s should promote, got step=%q status=%q", label, out.CurrentStep, out.Status)
		}
	}
	for _, label := range []string{ResultNoFit, ResultBadFit, ResultIneligibleCV, ResultInsufficientData} {
		out := Decide(LLMResult{Result: label}, SettingGoodFitAndAbove)
		if out.Status != StatusFailedCVScreening {
			t.Fatalf("%s should fail, got status=%q", label, out.Status)
		}
	}
}

func TestNoCVOutcome(t *testing.T) {
	out := NoCVOutcome()
	if out.CVStatus != StatusNoCV {
		t.Fatalf("cvStatus = %q, want %q", out.CVStatus, StatusNoCV)
	}
	if out.StateClass != StateMuted {
		t.Fatalf("stateClass = %q, want %q", out.StateClass, StateMuted)
	}
	if out.CVScreeningReason != ReasonNoCV {
		t.Fatalf("reason = %q, want %q", out.CVScreeningReason, ReasonNoCV)
	}
	if out.Status != "" || out.CurrentStep != "" {
		t.Fatalf("no-cv outcome must not assign step or status")
	}
}
